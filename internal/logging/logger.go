// Package logging is the structured logger shared by the gqlblog server.
//
// Loggers take the request context on every call so that attributes bound
// with WithAttrs (request id, GraphQL operation) follow a request through the
// HTTP layer, the resolvers and the error presenter.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key-value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
