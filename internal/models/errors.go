package models

import (
	"errors"
)

var (
	ErrPropertyNotFound   = errors.New("models: property not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrPermissionDenied   = errors.New("models: permission denied")
	ErrPropertyArchived   = errors.New("models: property is archived")
	ErrFavoriteExists     = errors.New("models: favorite already exists")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidPrice       = errors.New("models: price must be a positive number")
	ErrInvalidRole        = errors.New("models: invalid role")
)
