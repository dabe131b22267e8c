package models

import "strings"

// ChannelID identifies the device channel a user is associated with.
// It is opaque to this module; only emptiness is checked.
type ChannelID string

// String returns the channel identifier as a plain string.
func (c ChannelID) String() string {
	return string(c)
}

// IsEmpty reports whether the channel identifier is blank after trimming
// surrounding whitespace.
func (c ChannelID) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// UserRecord represents a user resource created by the remote user API.
// A record is immutable once returned: callers receive it by value and
// the API client never keeps a reference to it.
type UserRecord struct {
	// UserID is the server-assigned user identifier. It doubles as the
	// basic-auth username for subsequent update calls.
	UserID string `json:"user_id"`

	// Password is the server-generated secret paired with UserID.
	// It must never be logged.
	Password string `json:"-"`

	// URL is the canonical location of the user resource, if the server
	// returned one.
	URL string `json:"user_url,omitempty"`
}

// IsValid reports whether the record carries the credentials required to
// address the user resource.
func (u UserRecord) IsValid() bool {
	return strings.TrimSpace(u.UserID) != "" && u.Password != ""
}
