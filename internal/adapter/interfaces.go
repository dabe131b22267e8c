// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport session used to talk to the remote
// device API.
//
// The primary abstraction is [RequestSession]: given a [Request] descriptor it
// performs the network call and returns the raw [Response]. It does not
// interpret status codes; callers classify responses themselves. The package
// ships an HTTP/REST implementation backed by resty ([NewHTTPSession]).
//
// A non-nil error from [RequestSession.Do] always means the exchange did not
// produce an HTTP response (connection, DNS, TLS, timeout or cancellation)
// and wraps [ErrTransport].
package adapter

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/request_session_mock.go -package=mock

// RequestSession performs a single HTTP exchange described by a [Request].
// Implementations must be safe for concurrent use.
type RequestSession interface {
	// Do sends req and returns the raw response for any status code.
	// The call honours ctx: cancelling it aborts the in-flight exchange and
	// Do returns an error wrapping both [ErrTransport] and ctx.Err().
	Do(ctx context.Context, req Request) (*Response, error)
}

// BasicAuth holds HTTP basic-auth credentials for a single request.
type BasicAuth struct {
	Username string
	Password string
}

// Request describes one outbound call relative to the session's base URL.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodPost.
	Method string
	// Path is appended to the session base URL, e.g. "/api/user/".
	Path string
	// Header holds extra headers. Content-Type defaults to
	// application/json when Body is set.
	Header http.Header
	// Body is marshalled to JSON when non-nil.
	Body any
	// Auth, when set, is sent as an Authorization: Basic header.
	Auth *BasicAuth
}

// Response is the raw outcome of an HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// RequestID is the X-Request-ID value sent with the request.
	RequestID string
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r != nil && r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
