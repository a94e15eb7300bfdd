package aggregator

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf16"
	"unicode/utf8"
)

// WriteJSON writes the index as json object (secp -> name), replacing existing files.
func (idx *Index) WriteJSON(fileName string) error {
	data, err := idx.MarshalJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(fileName, data, 0o644); err != nil { //nolint:gosec // public lookup table
		return fmt.Errorf("error writing %v: %w", fileName, err)
	}

	return nil
}

// MarshalJSON encodes the index as indented json object in index order.
func (idx *Index) MarshalJSON() ([]byte, error) {
	entries := idx.Entries()
	if len(entries) == 0 {
		return []byte("{}"), nil
	}

	buf := &bytes.Buffer{}
	buf.WriteString("{\n")

	for i, entry := range entries {
		key, err := marshalString(entry.Secp)
		if err != nil {
			return nil, err
		}

		value, err := marshalString(entry.Name)
		if err != nil {
			return nil, err
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)

		if i < len(entries)-1 {
			buf.WriteString(",")
		}

		buf.WriteString("\n")
	}

	buf.WriteString("}")

	return buf.Bytes(), nil
}

func marshalString(str string) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(str); err != nil {
		return nil, err
	}

	return escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// escapeNonASCII rewrites every rune outside printable ascii as \uXXXX, runes beyond the BMP as surrogate pairs.
func escapeNonASCII(data []byte) []byte {
	escaped := make([]byte, 0, len(data))

	for _, r := range string(data) {
		switch {
		case r < utf8.RuneSelf && r != 0x7f:
			escaped = append(escaped, byte(r))
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			escaped = fmt.Appendf(escaped, "\\u%04x\\u%04x", r1, r2)
		default:
			escaped = fmt.Appendf(escaped, "\\u%04x", r)
		}
	}

	return escaped
}

// WriteCSV writes the index as csv table (CRLF line endings) with secp_key,name header, replacing existing files.
func (idx *Index) WriteCSV(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error creating %v: %w", fileName, err)
	}

	writer := csv.NewWriter(f)
	writer.UseCRLF = true

	if err := writer.Write([]string{"secp_key", "name"}); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing %v: %w", fileName, err)
	}

	for _, entry := range idx.Entries() {
		if err := writer.Write([]string{entry.Secp, entry.Name}); err != nil {
			_ = f.Close()
			return fmt.Errorf("error writing %v: %w", fileName, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing %v: %w", fileName, err)
	}

	return f.Close()
}
