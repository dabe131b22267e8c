// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package userapi is the client for the device API "user" resource.
//
// It performs exactly two remote operations, [Client.CreateUser] and
// [Client.UpdateUser], over an injected [adapter.RequestSession]. Each call
// returns a [Pending] immediately; the outcome arrives asynchronously as a
// single [Result].
//
// Every failure is an [*Error] of one of two kinds. [KindRecoverable] means
// the caller may retry later (transport failures, cancellation, 5xx, 408,
// 429). [KindUnrecoverable] means retrying will not help (other non-2xx
// statuses, malformed success bodies, invalid input). The client never
// retries on its own.
package userapi
