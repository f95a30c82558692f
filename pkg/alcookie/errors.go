package alcookie

import "errors"

var (
	ErrOpenFailed         = errors.New("cannot open cookie file")
	ErrReadFailed         = errors.New("cannot read cookie file")
	ErrTruncatedHeader    = errors.New("cookie file header is truncated")
	ErrBadMagic           = errors.New("invalid cookie file signature")
	ErrUnsupportedVersion = errors.New("unsupported cookie file version")
	ErrInvalidKeyLength   = errors.New("invalid encryption key length")
	ErrInvalidRecordSize  = errors.New("invalid cookie record size")
	ErrTruncatedRecord    = errors.New("truncated cookie record")
	ErrMalformedRecord    = errors.New("malformed cookie record")
	ErrMalformedExpires   = errors.New("malformed cookie expiry")
	ErrMalformedFlag      = errors.New("malformed cookie flag")
)
