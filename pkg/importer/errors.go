package importer

import "errors"

// ErrNoBaseplate means there is nothing to place the icon into.
var ErrNoBaseplate = errors.New("template has no usable baseplate")
