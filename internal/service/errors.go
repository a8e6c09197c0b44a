package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrDuplicateUsername  = errors.New("username exists")     // 400
	ErrDuplicateRole      = errors.New("role exists")         // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotFound           = errors.New("not found")           // 404
	ErrSearchDisabled     = errors.New("search disabled")     // 503
)
