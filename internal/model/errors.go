package model

import "errors"

// Error kinds. Wrap them with fmt.Errorf("%w: ...: %w", kind, err) and test
// with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrIO           = errors.New("io")
	ErrParsing      = errors.New("parsing")
	ErrSourceFormat = errors.New("source format")
)
