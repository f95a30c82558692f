package compiler

import "errors"

var (
	ErrCompileInProgress = errors.New("cookie compilation is already in progress")
	ErrLocked            = errors.New("a compile lockfile already exists")
)
