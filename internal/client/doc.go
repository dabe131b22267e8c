// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the userctl command runtime.
//
// It parses the positional command, wires the user API client, the user
// service and the background registration job, and maps failures onto
// process exit codes.
package client
