package search

import "errors"

var (
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrSearchTimeout = errors.New("search timed out")
)
