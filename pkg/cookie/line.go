package cookie

import (
	"fmt"
	"strings"
	"time"
)

// expiresLayout is the timestamp layout accepted for the expires
// attribute of a cookie line.
const expiresLayout = "2006-01-02 15:04:05"

// FormatLine serialises a cookie as a single attribute line of the form
// `name=<n>;value=<v>;domain=<d>;path=<p>;secure=<bool>;httpOnly=<bool>`.
// This is the record format of compiled cookie files. The expiry is not
// part of the line format.
func FormatLine(c Cookie) string {
	var sb strings.Builder

	sb.WriteString("name=")
	sb.WriteString(c.Name)
	sb.WriteString(";value=")
	sb.WriteString(c.Value)
	sb.WriteString(";domain=")
	sb.WriteString(c.Domain)
	sb.WriteString(";path=")
	sb.WriteString(c.Path)
	sb.WriteString(";secure=")
	sb.WriteString(formatBool(c.Secure))
	sb.WriteString(";httpOnly=")
	sb.WriteString(formatBool(c.HttpOnly))

	return sb.String()
}

// ParseLine parses a single attribute line back into a cookie. Tokens
// without a `=` separator and unknown keys are skipped. An expires
// attribute, when present, must match the `2006-01-02 15:04:05` layout.
func ParseLine(line string) (Cookie, error) {
	var c Cookie

	for _, token := range strings.Split(line, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		key, val, found := strings.Cut(token, "=")
		if !found {
			continue
		}

		switch key {
		case "name":
			c.Name = val
		case "value":
			c.Value = val
		case "domain":
			c.Domain = val
		case "path":
			c.Path = val
		case "expires":
			t, err := time.ParseInLocation(expiresLayout, val, time.Local)
			if err != nil {
				return Cookie{}, fmt.Errorf("parsing expires attribute %q: %w", val, err)
			}
			c.Expires = t.Unix()
		case "secure":
			c.Secure = val == "true"
		case "httpOnly":
			c.HttpOnly = val == "true"
		}
	}

	return c, nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
