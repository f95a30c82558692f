package alcookie

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

// recordFields names the seven null-terminated fields of a record body
// in their fixed on-disk order.
var recordFields = [...]string{"domain", "name", "value", "path", "expires", "secure", "httpOnly"}

// ParseRecords walks a decrypted payload left-to-right and decodes every
// length-prefixed cookie record. An empty payload yields an empty result.
// The parser is non-recovering: the first structural error aborts the
// decode and no partial result is returned.
func ParseRecords(payload []byte) ([]cookie.Cookie, error) {
	var cookies []cookie.Cookie

	for cur := 0; cur < len(payload); {
		rest := len(payload) - cur
		if rest < 4 {
			return nil, fmt.Errorf("%w: %d stray bytes where a length prefix was expected", ErrTruncatedRecord, rest)
		}

		size := int32(binary.LittleEndian.Uint32(payload[cur : cur+4]))
		cur += 4

		if size <= 0 || size > MaxRecordSize {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRecordSize, size)
		}
		if int(size) > len(payload)-cur {
			return nil, fmt.Errorf("%w: record declares %d bytes but only %d remain", ErrTruncatedRecord, size, len(payload)-cur)
		}

		c, err := parseRecord(payload[cur : cur+int(size)])
		if err != nil {
			return nil, err
		}
		cur += int(size)

		cookies = append(cookies, c)
	}

	return cookies, nil
}

// parseRecord decodes one record body into a cookie.
func parseRecord(body []byte) (cookie.Cookie, error) {
	fields, err := splitFields(body)
	if err != nil {
		return cookie.Cookie{}, err
	}

	c := cookie.Cookie{
		Domain: fields[0],
		Name:   fields[1],
		Value:  fields[2],
		Path:   fields[3],
	}

	if c.Domain == "" {
		return cookie.Cookie{}, fmt.Errorf("%w: empty domain", ErrMalformedRecord)
	}
	if c.Name == "" {
		return cookie.Cookie{}, fmt.Errorf("%w: empty name", ErrMalformedRecord)
	}

	c.Expires, err = strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return cookie.Cookie{}, fmt.Errorf("%w: %q", ErrMalformedExpires, fields[4])
	}

	if c.Secure, err = parseFlag("secure", fields[5]); err != nil {
		return cookie.Cookie{}, err
	}
	if c.HttpOnly, err = parseFlag("httpOnly", fields[6]); err != nil {
		return cookie.Cookie{}, err
	}

	return c, nil
}

// splitFields cuts a record body into exactly seven null-terminated
// fields. The final field's terminator is required and nothing may
// follow it.
func splitFields(body []byte) ([len(recordFields)]string, error) {
	var fields [len(recordFields)]string

	rest := body
	for i := range fields {
		idx := bytes.IndexByte(rest, 0x00)
		if idx < 0 {
			return fields, fmt.Errorf("%w: %s field is missing its terminator", ErrMalformedRecord, recordFields[i])
		}
		fields[i] = string(rest[:idx])
		rest = rest[idx+1:]
	}

	if len(rest) != 0 {
		return fields, fmt.Errorf("%w: %d trailing bytes after the final field", ErrMalformedRecord, len(rest))
	}

	return fields, nil
}

// parseFlag decodes a boolean field, which must be exactly "0" or "1".
func parseFlag(name, val string) (bool, error) {
	switch val {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s is %q, want \"0\" or \"1\"", ErrMalformedFlag, name, val)
}
