package userapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/channel-user-client/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError_Classification(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusBadRequest, KindUnrecoverable},
		{http.StatusUnauthorized, KindUnrecoverable},
		{http.StatusForbidden, KindUnrecoverable},
		{http.StatusNotFound, KindUnrecoverable},
		{http.StatusConflict, KindUnrecoverable},
		{http.StatusUnprocessableEntity, KindUnrecoverable},
		{http.StatusMovedPermanently, KindUnrecoverable},
		{http.StatusRequestTimeout, KindRecoverable},
		{http.StatusTooManyRequests, KindRecoverable},
		{http.StatusInternalServerError, KindRecoverable},
		{http.StatusBadGateway, KindRecoverable},
		{http.StatusServiceUnavailable, KindRecoverable},
		{http.StatusGatewayTimeout, KindRecoverable},
		{599, KindRecoverable},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := mapHTTPError("op", &adapter.Response{StatusCode: tt.status, Body: []byte(" boom ")})
			require.NotNil(t, err)

			assert.Equal(t, tt.want, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, "boom", err.Body)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
		})
	}
}

func TestMapHTTPError_SuccessIsNil(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent} {
		assert.Nil(t, mapHTTPError("op", &adapter.Response{StatusCode: status}))
	}
}

func TestMapHTTPError_TruncatesBody(t *testing.T) {
	body := strings.Repeat("x", maxErrorBody*2)

	err := mapHTTPError("op", &adapter.Response{StatusCode: http.StatusBadRequest, Body: []byte(body)})
	require.NotNil(t, err)
	assert.Len(t, err.Body, maxErrorBody)
}

func TestMapHTTPError_TruncatesOnRuneBoundary(t *testing.T) {
	// one ASCII byte shifts every 2-byte "é" so the limit falls inside one
	body := "x" + strings.Repeat("é", maxErrorBody)

	err := mapHTTPError("op", &adapter.Response{StatusCode: http.StatusBadRequest, Body: []byte(body)})
	require.NotNil(t, err)
	assert.True(t, utf8.ValidString(err.Body))
	assert.Len(t, err.Body, maxErrorBody-1)
}

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "abc", limit: 5, want: "abc"},
		{name: "exact", in: "abcde", limit: 5, want: "abcde"},
		{name: "ascii", in: "abcdef", limit: 4, want: "abcd"},
		{name: "inside two-byte rune", in: "aé", limit: 2, want: "a"},
		{name: "inside four-byte rune", in: "ab😀", limit: 4, want: "ab"},
		{name: "before rune", in: "ab😀", limit: 2, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestMapTransportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     ErrorKind
		isTarget error
	}{
		{name: "connection refused", err: fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport), want: KindRecoverable, isTarget: adapter.ErrTransport},
		{name: "cancelled", err: fmt.Errorf("%w: %w", adapter.ErrTransport, context.Canceled), want: KindRecoverable, isTarget: ErrRequestInterrupted},
		{name: "deadline", err: fmt.Errorf("%w: %w", adapter.ErrTransport, context.DeadlineExceeded), want: KindRecoverable, isTarget: context.DeadlineExceeded},
		{name: "invalid descriptor", err: fmt.Errorf("%w: no path", adapter.ErrInvalidRequest), want: KindUnrecoverable, isTarget: adapter.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapTransportError("op", tt.err)
			assert.Equal(t, tt.want, err.Kind)
			assert.Zero(t, err.StatusCode)
			assert.ErrorIs(t, err, tt.isTarget)
		})
	}
}

func TestError_IsKindSentinels(t *testing.T) {
	recoverable := error(&Error{Op: "op", Kind: KindRecoverable, Err: errors.New("x")})
	unrecoverable := error(&Error{Op: "op", Kind: KindUnrecoverable, Err: errors.New("y")})

	assert.ErrorIs(t, recoverable, ErrRecoverable)
	assert.NotErrorIs(t, recoverable, ErrUnrecoverable)
	assert.ErrorIs(t, unrecoverable, ErrUnrecoverable)
	assert.NotErrorIs(t, unrecoverable, ErrRecoverable)

	wrapped := fmt.Errorf("ensure user: %w", recoverable)
	assert.True(t, IsRecoverable(wrapped))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", &Error{Kind: KindRecoverable, Err: errors.New("x")}))
	assert.True(t, ok)
	assert.Equal(t, KindRecoverable, kind)

	kind, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, KindUnrecoverable, kind)
}

func TestError_Message(t *testing.T) {
	withStatus := &Error{Op: "create user", Kind: KindRecoverable, StatusCode: 503, Err: errors.New("unavailable")}
	assert.Equal(t, "create user: recoverable (status 503): unavailable", withStatus.Error())

	noStatus := &Error{Op: "update user", Kind: KindUnrecoverable, Err: ErrEmptyChannelID}
	assert.Equal(t, "update user: unrecoverable: channel id is empty", noStatus.Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "recoverable", KindRecoverable.String())
	assert.Equal(t, "unrecoverable", KindUnrecoverable.String())
	assert.Equal(t, "ErrorKind(7)", ErrorKind(7).String())
}
