package constants

import "errors"

var (
	ErrInvalidConstants  = errors.New("invalid constants")
	ErrUnknownFormat     = errors.New("unknown constants format")
	ErrInvalidGlobalName = errors.New("invalid global name")
)
