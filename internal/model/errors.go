package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrUnsupported        = errors.New("operation not supported by store")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
