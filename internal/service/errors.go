package service

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInactiveUser     = errors.New("user is not active")
)
