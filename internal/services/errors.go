package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrEmptyQuery     = errors.New("search query cannot be empty")
	ErrCyclePrevented = errors.New("cannot move folder into itself or its descendants")
	ErrSizeExceeded   = errors.New("file size exceeds limit")
	ErrCopyFailed     = errors.New("failed to copy file")
)
