package userapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/channel-user-client/internal/adapter"
)

// maxErrorBody bounds the response body kept on an [*Error].
const maxErrorBody = 512

// mapTransportError classifies a failure where no response was received.
// Everything here is transient, cancellation included.
func mapTransportError(op string, err error) *Error {
	if errors.Is(err, adapter.ErrInvalidRequest) {
		return &Error{Op: op, Kind: KindUnrecoverable, Err: err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Op: op, Kind: KindRecoverable, Err: fmt.Errorf("%w: %w", ErrRequestInterrupted, err)}
	}
	return &Error{Op: op, Kind: KindRecoverable, Err: err}
}

// mapHTTPError classifies a non-2xx response; it returns nil for 2xx.
func mapHTTPError(op string, resp *adapter.Response) *Error {
	if resp.IsSuccess() {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body)), maxErrorBody)

	return &Error{
		Op:         op,
		Kind:       kindForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Body:       body,
		Err:        fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// truncateBody cuts s to at most limit bytes without splitting a UTF-8
// sequence.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status >= http.StatusInternalServerError:
		return KindRecoverable
	case status == http.StatusTooManyRequests, status == http.StatusRequestTimeout:
		return KindRecoverable
	default:
		return KindUnrecoverable
	}
}
