// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// userctl command-line client.
//
// All Msg* constants are human-readable strings written to the terminal or
// log entries to describe the outcome of a command. Keeping them in one place
// ensures consistent wording across commands.
package app

const (
	// MsgUsage is printed when no command or a malformed command is given.
	MsgUsage = `usage: userctl [flags] <command> [args]

commands:
  create <channel>                      create a user bound to channel
  update <user_id> <password> <channel> add channel to an existing user
  ensure <channel>                      create a user, retrying transient failures
  watch                                 register channel ids read from stdin until interrupted
`

	// MsgUnknownCommand prefixes the name of an unsupported command.
	MsgUnknownCommand = "unknown command"

	// MsgWrongArgumentCount is returned when a command receives too few or
	// too many positional arguments.
	MsgWrongArgumentCount = "wrong number of arguments"

	// MsgUserCreated introduces the credentials of a newly created user.
	MsgUserCreated = "user created"

	// MsgUserUpdated reports a successful channel association.
	MsgUserUpdated = "user updated"

	// MsgRecoverableFailure is printed when a command failed with an error
	// that is worth retrying later.
	MsgRecoverableFailure = "temporary failure, try again later"

	// MsgUnrecoverableFailure is printed when a command failed with an error
	// that will not go away on retry.
	MsgUnrecoverableFailure = "request rejected"

	// MsgChannelRegistered is printed by watch once a channel is associated
	// with the held user.
	MsgChannelRegistered = "channel registered"

	// MsgRegistrationFailed is printed by watch for a channel that could not
	// be registered.
	MsgRegistrationFailed = "registration failed"
)
