package service

import "errors"

// Domain errors, mapped to HTTP statuses by the handlers.
var (
	ErrConflict           = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("user or course not found")
	ErrEmptyPassword      = errors.New("password is empty")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)
