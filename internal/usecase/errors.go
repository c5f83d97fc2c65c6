package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDuplicateSignup       = errors.New("participant already signed up")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
