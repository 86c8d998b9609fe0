package sqrt

import "errors"

var (
	errEmptyTable       = errors.New("sqrt: table must not be empty")
	errNilTable         = errors.New("sqrt: table must not be nil")
	errMismatchedLength = errors.New("sqrt: slices must have same length")
)
