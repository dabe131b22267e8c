package service

import (
	"context"

	"github.com/MKhiriev/channel-user-client/models"
)

// UserService keeps a user resource associated with the device channel.
// It is the caller-side retry loop for the user API: recoverable failures
// are retried with exponential backoff, unrecoverable ones are returned
// immediately. It is safe for concurrent use: attempts are serialised, so
// concurrent callers with no held user create it only once.
type UserService interface {
	// EnsureUser creates a user bound to channelID if none is held yet, or
	// adds channelID to the held user otherwise. It returns the held record.
	// The error, if any, wraps the last [userapi.Error] or ctx.Err().
	EnsureUser(ctx context.Context, channelID models.ChannelID) (models.UserRecord, error)

	// User returns the held record and whether one is held.
	User() (models.UserRecord, bool)

	// SetUser replaces the held record, e.g. with credentials obtained
	// out of band.
	SetUser(record models.UserRecord)

	// Reset forgets the held record; the next EnsureUser creates a new user.
	Reset()
}

// UserRegistrationJob runs EnsureUser in the background for the most recently
// submitted channel.
type UserRegistrationJob interface {
	// Run launches the background goroutine. Any previously running job is
	// stopped first. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Run(ctx context.Context)

	// Submit queues channelID for registration. If an earlier channel is
	// still queued it is replaced; Submit never blocks.
	Submit(channelID models.ChannelID)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
