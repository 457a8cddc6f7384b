package svgdoc

import "errors"

var (
	// ErrParse is matched (errors.Is) by every *ParseError.
	ErrParse     = errors.New("malformed svg")
	errNoRoot    = errors.New("document has no root element")
	errManyRoots = errors.New("content after the root element")
)

// ParseError reports XML that could not be turned into a Document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "malformed svg: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
