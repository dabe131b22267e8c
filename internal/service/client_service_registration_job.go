package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/models"
)

// RegistrationHook is called after every registration attempt.
type RegistrationHook func(channelID models.ChannelID, record models.UserRecord, err error)

type userRegistrationJob struct {
	users UserService
	hook  RegistrationHook

	queue    chan models.ChannelID
	submitMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewUserRegistrationJob creates a job that feeds submitted channels into
// users.EnsureUser. hook may be nil. The job is idle until Run is called.
func NewUserRegistrationJob(users UserService, hook RegistrationHook, log *logger.Logger) UserRegistrationJob {
	if log == nil {
		log = logger.Nop()
	}
	return &userRegistrationJob{
		users:  users,
		hook:   hook,
		queue:  make(chan models.ChannelID, 1),
		logger: log,
	}
}

// Run implements UserRegistrationJob.
func (j *userRegistrationJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			select {
			case <-jobCtx.Done():
				return
			case channelID := <-j.queue:
				j.register(jobCtx, channelID)
			}
		}
	}()
}

func (j *userRegistrationJob) register(ctx context.Context, channelID models.ChannelID) {
	rec, err := j.users.EnsureUser(ctx, channelID)
	if err != nil {
		j.logger.Error().Err(err).Str("channel_id", channelID.String()).Msg("user registration failed")
	}
	if j.hook != nil {
		j.hook(channelID, rec, err)
	}
}

// Submit implements UserRegistrationJob. The latest channel wins.
func (j *userRegistrationJob) Submit(channelID models.ChannelID) {
	j.submitMu.Lock()
	defer j.submitMu.Unlock()

	select {
	case <-j.queue:
	default:
	}
	j.queue <- channelID
}

// Stop implements UserRegistrationJob. Safe to call when the job is not
// running.
func (j *userRegistrationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
