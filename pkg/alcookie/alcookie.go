// Package alcookie decodes compiled incognito cookie archives as written
// by the Aluminum browser.
package alcookie

import (
	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

/*
A compiled incognito cookie archive is a fixed twelve byte header
followed by an encrypted payload:

---------------------------------------------------------------
| magic "ALCOOKIE" (8) | version (4, LE int32) | payload ...  |
---------------------------------------------------------------

The payload is obfuscated with a byte-wise XOR over a 32 byte key and,
once decrypted, holds a back-to-back sequence of cookie records:

---------------------------------------------------------------
| length L (4, LE int32) | record body (L bytes)              |
---------------------------------------------------------------

Each record body carries exactly seven null-terminated fields in fixed
order: domain, name, value, path, expires, secure, httpOnly. The expiry
is decimal Unix seconds; the two flags are the single byte "0" or "1".
The sum of all record frames equals the payload length, so decoding is
a single left-to-right cursor walk with no lookahead.
*/
const (
	// Magic identifies a compiled incognito cookie archive.
	Magic = "ALCOOKIE"
	// Version is the only archive version this decoder accepts.
	Version = 3
	// HeaderSize is the length of the magic plus the version field.
	HeaderSize = len(Magic) + 4
	// MaxRecordSize bounds the declared length of a single record.
	MaxRecordSize = 4096
	// KeySize is the required length of the XOR key in bytes.
	KeySize = 32
)

// Decode validates the archive header, decrypts the payload with the
// given 32 byte key and parses the cookie records. The first structural
// error aborts the whole decode; no partial result is returned.
func Decode(data, key []byte) ([]cookie.Cookie, error) {
	if _, err := ValidateHeader(data); err != nil {
		return nil, err
	}

	payload, err := Crypt(data[HeaderSize:], key)
	if err != nil {
		return nil, err
	}

	return ParseRecords(payload)
}

// DecodeFile reads the archive at path and decodes it with the given
// key.
func DecodeFile(path string, key []byte) ([]cookie.Cookie, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, key)
}
