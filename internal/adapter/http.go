package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/utils"
)

// HeaderRequestID carries the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// acceptHeader pins the device API version.
const acceptHeader = "application/vnd.urbanairship+json; version=3;"

type httpSession struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPSession constructs the resty-backed implementation of
// [RequestSession]. It normalises adapterCfg.HTTPAddress into the base URL
// and applies adapterCfg.RequestTimeout to every exchange.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPSession(adapterCfg config.ClientAdapter, log *logger.Logger) (RequestSession, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClientWithBase(baseURL, adapterCfg.RequestTimeout)
	client.SetHeader("Accept", acceptHeader)

	return &httpSession{client: client, ids: utils.NewUUIDGenerator(), logger: log}, nil
}

// Do implements [RequestSession].
func (h *httpSession) Do(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Method) == "" || strings.TrimSpace(req.Path) == "" {
		return nil, fmt.Errorf("%w: method and path are required", ErrInvalidRequest)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)

	for key, values := range req.Header {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		if r.Header.Get("Content-Type") == "" {
			r.SetHeader("Content-Type", "application/json")
		}
		r.SetBody(req.Body)
	}
	if req.Auth != nil {
		r.SetBasicAuth(req.Auth.Username, req.Auth.Password)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http exchange failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("http exchange done")

	header := resp.Header()
	if header == nil {
		header = http.Header{}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       resp.Body(),
		RequestID:  requestID,
	}, nil
}
