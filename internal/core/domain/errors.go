package domain

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
	ErrForbidden             = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrObjectNotFound   = errors.New("object not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
