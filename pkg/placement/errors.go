package placement

import "errors"

var (
	ErrMalformedTransform   = errors.New("malformed transform")
	ErrUnsupportedTransform = errors.New("unsupported transform")
)
