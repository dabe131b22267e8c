package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/channel-user-client/internal/app"
	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/internal/service"
	"github.com/MKhiriev/channel-user-client/internal/userapi"
	"github.com/MKhiriev/channel-user-client/internal/workers"
	"github.com/MKhiriev/channel-user-client/models"
)

type App struct {
	api      userapi.UserAPI
	services *service.ClientServices
	workers  *workers.Workers

	in  io.Reader
	out *syncWriter

	logger *logger.Logger
}

// NewApp builds an App talking to the device API described by cfg, reading
// from stdin and printing to stdout.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	api, err := userapi.NewClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create user api client: %w", err)
	}

	return NewAppWithAPI(api, cfg, os.Stdin, os.Stdout, log)
}

// NewAppWithAPI builds an App over an explicit API and terminal streams.
func NewAppWithAPI(api userapi.UserAPI, cfg *config.ClientConfig, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	a := &App{
		api:    api,
		in:     in,
		out:    &syncWriter{w: out},
		logger: log,
	}

	services, err := service.NewClientServices(api, cfg.Workers, a.printRegistration, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}
	a.services = services
	a.workers = workers.NewWorkers(services.RegistrationJob)

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.out.printf("%s", app.MsgUsage)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "create":
		err = a.withArgs(cmd, rest, 1, func() error { return a.create(ctx, models.ChannelID(rest[0])) })
	case "update":
		err = a.withArgs(cmd, rest, 3, func() error {
			return a.update(ctx, models.UserRecord{UserID: rest[0], Password: rest[1]}, models.ChannelID(rest[2]))
		})
	case "ensure":
		err = a.withArgs(cmd, rest, 1, func() error { return a.ensure(ctx, models.ChannelID(rest[0])) })
	case "watch":
		err = a.withArgs(cmd, rest, 0, func() error { return a.watch(ctx) })
	default:
		a.out.printf("%s: %s\n%s", app.MsgUnknownCommand, cmd, app.MsgUsage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if err != nil {
		a.reportFailure(err)
	}
	return err
}

func (a *App) withArgs(cmd string, rest []string, want int, run func() error) error {
	if len(rest) != want {
		a.out.printf("%s: %s\n%s", app.MsgWrongArgumentCount, cmd, app.MsgUsage)
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrUsage, cmd, want, len(rest))
	}
	return run()
}

func (a *App) create(ctx context.Context, channelID models.ChannelID) error {
	p := a.api.CreateUser(ctx, channelID)
	rec, err := p.Wait(ctx)
	if err != nil {
		p.Cancel()
		return err
	}

	a.printUser(rec)
	return nil
}

func (a *App) update(ctx context.Context, record models.UserRecord, channelID models.ChannelID) error {
	p := a.api.UpdateUser(ctx, record, channelID)
	if _, err := p.Wait(ctx); err != nil {
		p.Cancel()
		return err
	}

	a.out.printf("%s: %s (channel %s)\n", app.MsgUserUpdated, record.UserID, channelID)
	return nil
}

func (a *App) ensure(ctx context.Context, channelID models.ChannelID) error {
	held, hadUser := a.services.UserService.User()

	rec, err := a.services.UserService.EnsureUser(ctx, channelID)
	if err != nil {
		return err
	}

	if hadUser && held.UserID == rec.UserID {
		a.out.printf("%s: %s (channel %s)\n", app.MsgUserUpdated, rec.UserID, channelID)
		return nil
	}
	a.printUser(rec)
	return nil
}

// watch registers every non-blank stdin line until ctx is cancelled.
// Reaching the end of input stops reading but not the registration job.
func (a *App) watch(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	lines := make(chan models.ChannelID)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			ch := models.ChannelID(strings.TrimSpace(scanner.Text()))
			if ch.IsEmpty() {
				continue
			}
			select {
			case lines <- ch:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			a.logger.Error().Err(err).Msg("read channel ids")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			a.logger.Debug().Str("channel_id", ch.String()).Msg("channel submitted")
			a.services.RegistrationJob.Submit(ch)
		}
	}
}

func (a *App) printRegistration(channelID models.ChannelID, rec models.UserRecord, err error) {
	if err != nil {
		a.out.printf("%s: %s: %v\n", app.MsgRegistrationFailed, channelID, err)
		return
	}
	a.out.printf("%s: %s (user %s)\n", app.MsgChannelRegistered, channelID, rec.UserID)
}

func (a *App) printUser(rec models.UserRecord) {
	a.out.printf("%s\nuser_id: %s\npassword: %s\n", app.MsgUserCreated, rec.UserID, rec.Password)
	if rec.URL != "" {
		a.out.printf("user_url: %s\n", rec.URL)
	}
}

func (a *App) reportFailure(err error) {
	if errors.Is(err, ErrUsage) {
		return
	}
	switch ExitCode(err) {
	case ExitRecoverable:
		a.out.printf("%s: %v\n", app.MsgRecoverableFailure, err)
	case ExitUnrecoverable:
		a.out.printf("%s: %v\n", app.MsgUnrecoverableFailure, err)
	}
}

// syncWriter serialises writes from the registration hook and the command
// goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, format, args...)
}
