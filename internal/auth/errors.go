package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailRequired      = errors.New("Email and password are required")
)
