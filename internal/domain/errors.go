package domain

import "errors"

var (
	ErrUsernameTaken   = errors.New("a user with that username already exists")
	ErrEmailTaken      = errors.New("a user with that email already exists")
	ErrVersionConflict = errors.New("settings were changed concurrently")
)
