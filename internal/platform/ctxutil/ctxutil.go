// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil carries the per-request state of the catalog API.

The middleware chain stores the request ID echoed in X-Request-ID, a logger
tagged with that ID (and the user ID once a token is verified) and the
caller's claims. Services read the claims back to decide what a caller may
see.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/ctxkey"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

// # Request Tracing

// WithRequestID stores the ID chosen by the request ID middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns "" outside an HTTP request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger stores the request-tagged logger used by handlers and stores.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request logger, or [slog.Default] when none is set,
// so background code can log without a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity & Access

// WithAuthUser stores the claims of a verified bearer token. Anonymous
// requests carry none.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser returns the caller's claims, or nil for an anonymous request.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	return claims
}

/*
Can reports whether the caller may use permission.

It decides concept and field visibility: holders of the change permission
see unpublished and archived records and may filter on those flags, while
everyone else, anonymous callers included, is limited to published records.
*/
func Can(ctx context.Context, permission string) bool {
	return sec.HasPermission(GetAuthUser(ctx), permission)
}
