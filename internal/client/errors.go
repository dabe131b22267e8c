package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/channel-user-client/internal/userapi"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrUnknownCommand = errors.New("unknown command")
)

const (
	ExitOK            = 0
	ExitUnrecoverable = 1
	ExitRecoverable   = 2
)

// ExitCode maps the error returned by [App.Run] to a process exit status.
// Interrupted commands count as recoverable.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case userapi.IsRecoverable(err):
		return ExitRecoverable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitRecoverable
	default:
		return ExitUnrecoverable
	}
}
