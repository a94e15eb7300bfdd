package checklogo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethpandaops/validator-info/pkg/buildinfo"
	"github.com/ethpandaops/validator-info/pkg/types"
	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
)

var (
	CheckName       = "check_logo"
	CheckDescriptor = &types.CheckDescriptor{
		Name:        CheckName,
		Description: "Checks that the logo is an https url serving an image.",
		NewCheck:    NewCheck,
	}
)

type Check struct {
	ctx    *types.CheckContext
	client *http.Client
	logger logrus.FieldLogger
}

func NewCheck(ctx *types.CheckContext) (types.Check, error) {
	client := ctx.Services.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Check{
		ctx:    ctx,
		client: client,
		logger: ctx.Logger.WithField("check", CheckName),
	}, nil
}

func (c *Check) Execute(ctx context.Context) error {
	logoURL, _ := c.ctx.Record.String(validatorinfo.FieldLogo)
	problems := []error{}

	if strings.TrimSpace(logoURL) == "" {
		c.ctx.Reporter.Fail("Invalid 'logo': field is missing or empty")
		problems = append(problems, fmt.Errorf("logo is missing or empty"))
	}

	if !strings.HasPrefix(logoURL, "https://") {
		c.ctx.Reporter.Fail("Invalid 'logo': must start with https://")
		problems = append(problems, fmt.Errorf("logo url %q is not https", logoURL))
	}

	for _, err := range c.fetchLogo(ctx, logoURL) {
		c.ctx.Reporter.Fail("%v", err)
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		c.ctx.Reporter.Fail("Logo %v check failed", logoURL)
		return errors.Join(problems...)
	}

	c.ctx.Reporter.Ok("Logo is valid")

	return nil
}

func (c *Check) fetchLogo(ctx context.Context, logoURL string) []error {
	timeout := c.ctx.Config.Validation.LogoTimeout.Duration
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, http.NoBody)
	if err != nil {
		return []error{fmt.Errorf("failed to fetch logo: %w", err)}
	}

	req.Header.Set("User-Agent", buildinfo.GetUserAgent())

	resp, err := c.client.Do(req)
	if err != nil {
		return []error{fmt.Errorf("failed to fetch logo: %w", err)}
	}

	defer func() {
		if err2 := resp.Body.Close(); err2 != nil {
			c.logger.WithError(err2).Warn("failed to close response body")
		}
	}()

	contentType := resp.Header.Get("Content-Type")
	c.logger.Debugf("logo response: status %v, content-type %q", resp.StatusCode, contentType)

	problems := []error{}

	if resp.StatusCode != http.StatusOK {
		problems = append(problems, fmt.Errorf("logo url returned HTTP %v", resp.StatusCode))
	}

	if !strings.HasPrefix(contentType, "image/") {
		problems = append(problems, fmt.Errorf("logo url is not an image (Content-Type: %v)", contentType))
	}

	return problems
}
