// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

// Package ctxutil provides helpers for the values Aura stores in a
// [context.Context]: correlation ID, per-request logger and auth claims.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/auralearn/aura/internal/platform/ctxkey"
	"github.com/auralearn/aura/internal/platform/sec"
	"github.com/auralearn/aura/internal/subscription"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
// Returns nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserTier resolves the subscription tier of the current request.
//
// Anonymous visitors and tokens carrying an unknown tier value both gate
// as [subscription.TierFree]: the public catalogue is always browsable and
// a malformed claim can never unlock paid content.
func GetUserTier(ctx context.Context) subscription.Tier {
	claims := GetAuthUser(ctx)
	if claims == nil {
		return subscription.TierFree
	}
	tier := subscription.Tier(claims.Tier)
	if !tier.IsValid() {
		return subscription.TierFree
	}
	return tier
}
