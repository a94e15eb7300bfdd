package staking

import "net/url"

func getRedactedURL(requrl string) string {
	urlData, _ := url.Parse(requrl)
	logurl := ""

	if urlData != nil {
		logurl = urlData.Redacted()
	} else {
		logurl = requrl
	}

	return logurl
}
