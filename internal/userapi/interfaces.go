package userapi

import (
	"context"

	"github.com/MKhiriev/channel-user-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_api_mock.go -package=mock

// UserAPI is the contract of the user resource client. [Client] implements it.
type UserAPI interface {
	// CreateUser creates a user bound to channelID. The result carries the
	// new [models.UserRecord] or an [*Error].
	CreateUser(ctx context.Context, channelID models.ChannelID) *Pending[models.UserRecord]

	// UpdateUser associates channelID with the existing user described by
	// record. The result carries nil or an [*Error].
	UpdateUser(ctx context.Context, record models.UserRecord, channelID models.ChannelID) *Pending[struct{}]
}
