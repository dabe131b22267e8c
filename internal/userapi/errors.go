package userapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the caller's retry policy.
type ErrorKind int

const (
	// KindRecoverable indicates an error that should be retried.
	KindRecoverable ErrorKind = iota
	// KindUnrecoverable indicates an error that should not be retried.
	KindUnrecoverable
)

func (k ErrorKind) String() string {
	switch k {
	case KindRecoverable:
		return "recoverable"
	case KindUnrecoverable:
		return "unrecoverable"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	// ErrRecoverable matches every [*Error] of kind [KindRecoverable] via errors.Is.
	ErrRecoverable = errors.New("recoverable user api error")
	// ErrUnrecoverable matches every [*Error] of kind [KindUnrecoverable] via errors.Is.
	ErrUnrecoverable = errors.New("unrecoverable user api error")

	ErrEmptyChannelID     = errors.New("channel id is empty")
	ErrInvalidUserRecord  = errors.New("user record has no id or password")
	ErrInvalidResponse    = errors.New("invalid response body")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
	ErrRequestInterrupted = errors.New("request interrupted")
)

// Error is the single error type reported by [Client]. StatusCode is zero
// when no HTTP response was received.
type Error struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrRecoverable:
		return e.Kind == KindRecoverable
	case ErrUnrecoverable:
		return e.Kind == KindUnrecoverable
	}
	return false
}

// KindOf returns the classification of err. Errors that are not an [*Error]
// are reported as unrecoverable; ok is false in that case.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return KindUnrecoverable, false
}

// IsRecoverable reports whether err is a recoverable user API error.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrRecoverable)
}
