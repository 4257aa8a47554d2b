package repage

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("document has no markup and no sections")
	ErrMarkupParse   = errors.New("markup parsing failed")
)
