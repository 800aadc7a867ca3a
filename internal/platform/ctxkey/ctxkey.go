// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

// Package ctxkey defines the typed context keys used by middleware and
// handlers to pass per-request values (identity, correlation ID, logger).
//
// # Safety
//
// Keys use a private, unexported type so they can never collide with
// context values stored by third-party packages: Go's [context.Context]
// matches on both value and type.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the authenticated user's claims.
	KeyUser key = "user"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
