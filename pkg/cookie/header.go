package cookie

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SetFromHeader stores a cookie parsed from a Set-Cookie response header
// received for the given domain. Recognised attributes: Secure, HttpOnly,
// Expires (RFC 1123), Max-Age (seconds, later attributes win), Domain and
// Path overrides. A header without a name=value pair is ignored; the
// value is percent-decoded when possible.
func (j *Jar) SetFromHeader(domain, header string) error {
	parts := strings.Split(header, ";")

	name, value, found := strings.Cut(strings.TrimSpace(parts[0]), "=")
	if !found || name == "" {
		return nil
	}
	if dec, err := url.PathUnescape(value); err == nil {
		value = dec
	}

	c := Cookie{
		Domain: domain,
		Name:   name,
		Value:  value,
		Path:   "/",
	}

	for _, part := range parts[1:] {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch strings.ToLower(key) {
		case "secure":
			c.Secure = true
		case "httponly":
			c.HttpOnly = true
		case "expires":
			if t, err := time.Parse(time.RFC1123, val); err == nil {
				c.Expires = t.Unix()
			}
		case "max-age":
			if secs, err := strconv.Atoi(val); err == nil {
				c.Expires = time.Now().Add(time.Duration(secs) * time.Second).Unix()
			}
		case "domain":
			if val != "" {
				c.Domain = strings.TrimPrefix(strings.ToLower(val), ".")
			}
		case "path":
			if val != "" {
				c.Path = val
			}
		}
	}

	return j.Set(c)
}

// HeaderForURL renders the Cookie request header value for a URL:
// `name=value` pairs joined by `; ` in ForURL order.
func (j *Jar) HeaderForURL(rawURL string) (string, error) {
	cookies, err := j.ForURL(rawURL)
	if err != nil {
		return "", err
	}

	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}

	return strings.Join(pairs, "; "), nil
}
