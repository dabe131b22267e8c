// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/channel-user-client/internal/app"
	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/mock"
	"github.com/MKhiriev/channel-user-client/internal/userapi"
	"github.com/MKhiriev/channel-user-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// safeBuffer is a bytes.Buffer safe for the concurrent reads done by tests.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var testUser = models.UserRecord{UserID: "u1", Password: "p1", URL: "https://device-api.example.com/api/user/u1/"}

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{Key: "k", Secret: "s", DeviceType: "ios"},
		Adapter: config.ClientAdapter{HTTPAddress: "https://device-api.example.com", RequestTimeout: time.Second},
		Workers: config.ClientWorkers{
			RetryInitialDelay: time.Millisecond,
			RetryMaxDelay:     2 * time.Millisecond,
			RetryMaxAttempts:  2,
		},
	}
}

func newTestApp(t *testing.T, in string) (*App, *mock.MockUserAPI, *safeBuffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockUserAPI(ctrl)
	out := &safeBuffer{}

	a, err := NewAppWithAPI(api, testClientConfig(), strings.NewReader(in), out, logger.Nop())
	require.NoError(t, err)
	return a, api, out
}

func apiError(kind userapi.ErrorKind, status int) error {
	return &userapi.Error{Op: "test", Kind: kind, StatusCode: status, Err: userapi.ErrUnexpectedStatus}
}

// ── argument handling ────────────────────────────────────────────────────────

func TestApp_Run_NoCommand(t *testing.T) {
	a, _, out := newTestApp(t, "")

	err := a.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "usage: userctl")
	assert.Equal(t, ExitUnrecoverable, ExitCode(err))
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	a, _, out := newTestApp(t, "")

	err := a.Run(context.Background(), []string{"delete", "u1"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), app.MsgUnknownCommand+": delete")
}

func TestApp_Run_WrongArgumentCount(t *testing.T) {
	tests := [][]string{
		{"create"},
		{"create", "a", "b"},
		{"update", "u1", "p1"},
		{"ensure"},
		{"watch", "extra"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			a, _, out := newTestApp(t, "")

			err := a.Run(context.Background(), args)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, out.String(), app.MsgWrongArgumentCount)
			assert.NotContains(t, out.String(), app.MsgUnrecoverableFailure)
		})
	}
}

// ── create ───────────────────────────────────────────────────────────────────

func TestApp_Create_PrintsCredentials(t *testing.T) {
	a, api, out := newTestApp(t, "")

	api.EXPECT().CreateUser(gomock.Any(), models.ChannelID("channel-123")).
		Return(userapi.Resolved(testUser, nil)).Times(1)

	err := a.Run(context.Background(), []string{"create", "channel-123"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "user_id: u1")
	assert.Contains(t, out.String(), "password: p1")
	assert.Contains(t, out.String(), "user_url: "+testUser.URL)
}

func TestApp_Create_RecoverableFailure(t *testing.T) {
	a, api, out := newTestApp(t, "")

	// the client never retries, so neither does the create command
	api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(userapi.Resolved(models.UserRecord{}, apiError(userapi.KindRecoverable, http.StatusInternalServerError))).Times(1)

	err := a.Run(context.Background(), []string{"create", "channel-123"})
	require.Error(t, err)
	assert.Equal(t, ExitRecoverable, ExitCode(err))
	assert.Contains(t, out.String(), app.MsgRecoverableFailure)
}

// ── update ───────────────────────────────────────────────────────────────────

func TestApp_Update_UsesGivenCredentials(t *testing.T) {
	a, api, out := newTestApp(t, "")

	api.EXPECT().UpdateUser(gomock.Any(), models.UserRecord{UserID: "u1", Password: "p1"}, models.ChannelID("channel-456")).
		Return(userapi.Resolved(struct{}{}, nil)).Times(1)

	err := a.Run(context.Background(), []string{"update", "u1", "p1", "channel-456"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), app.MsgUserUpdated+": u1 (channel channel-456)")
}

func TestApp_Update_UnrecoverableFailure(t *testing.T) {
	a, api, out := newTestApp(t, "")

	api.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(userapi.Resolved(struct{}{}, apiError(userapi.KindUnrecoverable, http.StatusBadRequest))).Times(1)

	err := a.Run(context.Background(), []string{"update", "u1", "p1", "channel-456"})
	require.Error(t, err)
	assert.Equal(t, ExitUnrecoverable, ExitCode(err))
	assert.Contains(t, out.String(), app.MsgUnrecoverableFailure)
}

// ── ensure ───────────────────────────────────────────────────────────────────

func TestApp_Ensure_RetriesRecoverable(t *testing.T) {
	a, api, out := newTestApp(t, "")

	gomock.InOrder(
		api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(userapi.Resolved(models.UserRecord{}, apiError(userapi.KindRecoverable, http.StatusServiceUnavailable))),
		api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(userapi.Resolved(testUser, nil)),
	)

	err := a.Run(context.Background(), []string{"ensure", "channel-123"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "user_id: u1")
}

func TestApp_Ensure_HeldUserIsReportedAsUpdated(t *testing.T) {
	a, api, out := newTestApp(t, "")
	a.services.UserService.SetUser(testUser)

	api.EXPECT().UpdateUser(gomock.Any(), testUser, models.ChannelID("channel-456")).
		Return(userapi.Resolved(struct{}{}, nil)).Times(1)

	err := a.Run(context.Background(), []string{"ensure", "channel-456"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), app.MsgUserUpdated+": u1 (channel channel-456)")
	assert.NotContains(t, out.String(), app.MsgUserCreated)
	assert.NotContains(t, out.String(), "password:")
}

func TestApp_Ensure_NewUserIsReportedAsCreated(t *testing.T) {
	a, api, out := newTestApp(t, "")

	api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(userapi.Resolved(testUser, nil)).Times(1)

	err := a.Run(context.Background(), []string{"ensure", "channel-123"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), app.MsgUserCreated)
	assert.NotContains(t, out.String(), app.MsgUserUpdated)
}

// ── watch ────────────────────────────────────────────────────────────────────

func TestApp_Watch_RegistersChannelsFromInput(t *testing.T) {
	a, api, out := newTestApp(t, "\n  \nchannel-1\n")

	api.EXPECT().CreateUser(gomock.Any(), models.ChannelID("channel-1")).
		Return(userapi.Resolved(testUser, nil)).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, []string{"watch"}) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), app.MsgChannelRegistered+": channel-1 (user u1)")
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestApp_Watch_ReportsFailedRegistration(t *testing.T) {
	a, api, out := newTestApp(t, "channel-1\n")

	api.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(userapi.Resolved(models.UserRecord{}, apiError(userapi.KindUnrecoverable, http.StatusForbidden))).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, []string{"watch"}) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), app.MsgRegistrationFailed+": channel-1")
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

// ── ExitCode ─────────────────────────────────────────────────────────────────

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"recoverable", apiError(userapi.KindRecoverable, http.StatusBadGateway), ExitRecoverable},
		{"wrapped recoverable", fmt.Errorf("ensure: %w", apiError(userapi.KindRecoverable, 0)), ExitRecoverable},
		{"unrecoverable", apiError(userapi.KindUnrecoverable, http.StatusBadRequest), ExitUnrecoverable},
		{"canceled", context.Canceled, ExitRecoverable},
		{"deadline", fmt.Errorf("ensure: %w", context.DeadlineExceeded), ExitRecoverable},
		{"usage", ErrUsage, ExitUnrecoverable},
		{"other", errors.New("boom"), ExitUnrecoverable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
