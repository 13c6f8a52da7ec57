package oval

import "errors"

var (
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
	ErrInvalidName           = errors.New("invalid name")
	ErrNotElement            = errors.New("not an element")
	ErrNotFound              = errors.New("not found")
	ErrUnsupported           = errors.New("unsupported")
)
