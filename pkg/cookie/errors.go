package cookie

import "errors"

var (
	ErrCookieTooLarge = errors.New("invalid cookie: name and value exceed maximum size")
	ErrDomainFull     = errors.New("maximum number of cookies reached for domain")
)
