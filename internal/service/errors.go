package service

import "errors"

var (
	// ErrNilUserAPI is returned by NewClientServices when no user API is given.
	ErrNilUserAPI = errors.New("user api is nil")
)
