package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/channel-user-client/internal/adapter"
	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/utils"
	"github.com/MKhiriev/channel-user-client/models"
)

const (
	opCreateUser = "create user"
	opUpdateUser = "update user"

	userPath = "/api/user/"
)

// Client issues create and update calls for the user resource. It holds no
// mutable state; concurrent calls are independent.
type Client struct {
	session adapter.RequestSession
	app     config.ClientApp
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClient builds a Client with the default HTTP session derived from
// cfg.Adapter.
func NewClient(cfg *config.ClientConfig, log *logger.Logger) (*Client, error) {
	session, err := adapter.NewHTTPSession(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create request session: %w", err)
	}

	return NewClientWithSession(cfg, session, log), nil
}

// NewClientWithSession builds a Client over an explicit session.
func NewClientWithSession(cfg *config.ClientConfig, session adapter.RequestSession, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		session: session,
		app:     cfg.App,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// CreateUser implements [UserAPI]. It POSTs the channel to /api/user/
// authenticated with the application key and secret.
func (c *Client) CreateUser(ctx context.Context, channelID models.ChannelID) *Pending[models.UserRecord] {
	if channelID.IsEmpty() {
		return Resolved(models.UserRecord{}, error(&Error{Op: opCreateUser, Kind: KindUnrecoverable, Err: ErrEmptyChannelID}))
	}

	req := adapter.Request{
		Method: http.MethodPost,
		Path:   userPath,
		Body: models.CreateUserRequest{
			Channels:   []models.ChannelID{channelID},
			DeviceType: c.app.DeviceType,
		},
		Auth: &adapter.BasicAuth{Username: c.app.Key, Password: c.app.Secret},
	}

	return start(ctx, c, opCreateUser, req, decodeCreatedUser)
}

// UpdateUser implements [UserAPI]. It POSTs the channel association to
// /api/user/{user_id}/ authenticated with the user's own credentials.
func (c *Client) UpdateUser(ctx context.Context, record models.UserRecord, channelID models.ChannelID) *Pending[struct{}] {
	if !record.IsValid() {
		return Resolved(struct{}{}, error(&Error{Op: opUpdateUser, Kind: KindUnrecoverable, Err: ErrInvalidUserRecord}))
	}
	if channelID.IsEmpty() {
		return Resolved(struct{}{}, error(&Error{Op: opUpdateUser, Kind: KindUnrecoverable, Err: ErrEmptyChannelID}))
	}

	req := adapter.Request{
		Method: http.MethodPost,
		Path:   userPath + url.PathEscape(record.UserID) + "/",
		Body: models.UpdateUserRequest{
			Channels:   models.ChannelsUpdate{Add: []models.ChannelID{channelID}},
			DeviceType: c.app.DeviceType,
		},
		Auth: &adapter.BasicAuth{Username: record.UserID, Password: record.Password},
	}

	return start(ctx, c, opUpdateUser, req, func(*adapter.Response) (struct{}, error) {
		return struct{}{}, nil
	})
}

// start runs one exchange in its own goroutine and publishes exactly one
// result on the returned Pending.
func start[T any](ctx context.Context, c *Client, op string, req adapter.Request, decode func(*adapter.Response) (T, error)) *Pending[T] {
	requestID := c.ids.Generate()
	reqCtx, cancel := context.WithCancel(utils.WithRequestID(ctx, requestID))
	p := newPending[T](cancel)
	log := c.logger.ForRequest(op, requestID)

	go func() {
		value, apiErr := exchange(reqCtx, c.session, op, req, decode)
		if apiErr != nil {
			log.Warn().
				Str("kind", apiErr.Kind.String()).
				Int("status", apiErr.StatusCode).
				Err(apiErr.Err).
				Msg("user api request failed")
			p.complete(Result[T]{Err: apiErr})
			return
		}

		log.Info().Msg("user api request succeeded")
		p.complete(Result[T]{Value: value})
	}()

	return p
}

func exchange[T any](ctx context.Context, session adapter.RequestSession, op string, req adapter.Request, decode func(*adapter.Response) (T, error)) (T, *Error) {
	var zero T
	resp, err := session.Do(ctx, req)
	if err != nil {
		return zero, mapTransportError(op, err)
	}
	if apiErr := mapHTTPError(op, resp); apiErr != nil {
		return zero, apiErr
	}

	value, err := decode(resp)
	if err != nil {
		return zero, &Error{Op: op, Kind: KindUnrecoverable, StatusCode: resp.StatusCode, Err: err}
	}
	return value, nil
}

func decodeCreatedUser(resp *adapter.Response) (models.UserRecord, error) {
	var body models.CreateUserResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	record := body.Record()
	if !record.IsValid() {
		return models.UserRecord{}, fmt.Errorf("%w: missing user_id or password", ErrInvalidResponse)
	}
	return record, nil
}
