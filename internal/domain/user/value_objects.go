package user

import "errors"

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrMissingPrincipal = errors.New("principal id is required")
)
