package domain

import "errors"

var (
	ErrInvalidAction = errors.New("invalid moderation action")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
)
