package general

import "errors"

var (
	ErrUnsupportedType   = errors.New("unsupported type for clone")
	ErrCircularReference = errors.New("circular reference")
)
