package models

// CreateUserRequest is the JSON body of POST /api/user/.
type CreateUserRequest struct {
	// Channels lists the channels the new user is bound to.
	Channels []ChannelID `json:"channels"`

	// DeviceType is the platform of the channels (e.g. "ios", "android").
	DeviceType string `json:"device_type,omitempty"`
}

// ChannelsUpdate describes channel association changes for an existing user.
type ChannelsUpdate struct {
	Add []ChannelID `json:"add,omitempty"`
}

// UpdateUserRequest is the JSON body of POST /api/user/{user_id}/.
type UpdateUserRequest struct {
	Channels   ChannelsUpdate `json:"channels"`
	DeviceType string         `json:"device_type,omitempty"`
}
