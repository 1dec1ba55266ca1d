package repository

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrEmptyName = errors.New("name cannot be empty")
)
