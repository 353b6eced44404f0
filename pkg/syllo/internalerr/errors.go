package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidLanguage   = errors.New("invalid language")
	ErrMissingVocabulary = errors.New("missing vocabulary")
	ErrEmptyLibrary      = errors.New("empty template library")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrNoUsableTemplate  = errors.New("no usable template")
)
