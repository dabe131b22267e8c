package adapter

import "errors"

var (
	// ErrTransport marks failures where no HTTP response was received.
	ErrTransport = errors.New("transport failure")
	// ErrInvalidRequest marks request descriptors the session refuses to send.
	ErrInvalidRequest = errors.New("invalid request descriptor")
)
