package render

import "errors"

var (
	ErrNotCollection   = errors.New("value is not a collection")
	ErrUnsupportedType = errors.New("unsupported type")
)
