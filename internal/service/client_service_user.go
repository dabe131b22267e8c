package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/userapi"
	"github.com/MKhiriev/channel-user-client/models"
	"github.com/sethvargo/go-retry"
)

type userService struct {
	api    userapi.UserAPI
	policy config.ClientWorkers

	mu     sync.RWMutex
	record *models.UserRecord

	// ensureMu serialises attempts so concurrent callers never create two
	// users; backoff waits happen outside it.
	ensureMu sync.Mutex

	logger *logger.Logger
}

// NewUserService returns a [UserService] over api retrying recoverable
// failures according to policy.
func NewUserService(api userapi.UserAPI, policy config.ClientWorkers, log *logger.Logger) UserService {
	if log == nil {
		log = logger.Nop()
	}
	return &userService{api: api, policy: policy, logger: log}
}

// EnsureUser implements [UserService].
func (s *userService) EnsureUser(ctx context.Context, channelID models.ChannelID) (models.UserRecord, error) {
	var (
		result  models.UserRecord
		attempt int
	)

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		attempt++
		rec, err := s.ensureOnce(ctx, channelID)
		if err == nil {
			result = rec
			return nil
		}

		if userapi.IsRecoverable(err) {
			s.logger.Warn().Err(err).
				Int("attempt", attempt).
				Str("channel_id", channelID.String()).
				Msg("recoverable user api failure, will retry")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("ensure user for channel %q: %w", channelID, err)
	}

	return result, nil
}

func (s *userService) ensureOnce(ctx context.Context, channelID models.ChannelID) (models.UserRecord, error) {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()

	current, ok := s.User()
	if !ok {
		rec, err := await(ctx, s.api.CreateUser(ctx, channelID))
		if err != nil {
			return models.UserRecord{}, err
		}

		s.SetUser(rec)
		s.logger.Info().Str("user_id", rec.UserID).Str("channel_id", channelID.String()).Msg("user created")
		return rec, nil
	}

	if _, err := await(ctx, s.api.UpdateUser(ctx, current, channelID)); err != nil {
		if credentialsRejected(err) {
			s.logger.Warn().Err(err).Str("user_id", current.UserID).Msg("user credentials rejected, dropping user")
			s.forget(current)
		}
		return models.UserRecord{}, err
	}

	s.logger.Info().Str("user_id", current.UserID).Str("channel_id", channelID.String()).Msg("user updated")
	return current, nil
}

// User implements [UserService].
func (s *userService) User() (models.UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return models.UserRecord{}, false
	}
	return *s.record, true
}

// SetUser implements [UserService].
func (s *userService) SetUser(record models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = &record
}

// Reset implements [UserService].
func (s *userService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
}

// forget drops the held record only if it is still the one that failed.
func (s *userService) forget(failed models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record != nil && *s.record == failed {
		s.record = nil
	}
}

func (s *userService) backoff() retry.Backoff {
	b := retry.NewExponential(s.policy.RetryInitialDelay)
	b = retry.WithJitterPercent(10, b)
	b = retry.WithCappedDuration(s.policy.RetryMaxDelay, b)
	return retry.WithMaxRetries(s.policy.RetryMaxAttempts, b)
}

// await waits for p; if ctx ends first the request is cancelled and its
// (recoverable) result is still collected so nothing leaks.
func await[T any](ctx context.Context, p *userapi.Pending[T]) (T, error) {
	select {
	case r := <-p.Done():
		return r.Value, r.Err
	case <-ctx.Done():
		p.Cancel()
		r := <-p.Done()
		return r.Value, r.Err
	}
}

// credentialsRejected reports whether the server refused the held user's
// credentials, which means the user no longer exists for this client.
func credentialsRejected(err error) bool {
	var apiErr *userapi.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != userapi.KindUnrecoverable {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusNotFound
}
