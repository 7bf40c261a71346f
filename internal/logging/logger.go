// Package logging is the structured logger every credkeeper component takes.
// SlogLogger is the only implementation; tests use Discard.
package logging

import "context"

// Logger logs a message with key/value attributes, e.g.
//
//	log.Warn(ctx, "storage unavailable", "storage", "mongo", "error", err)
//
// The context is handed to the handler, so request-scoped values reach it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying args on every record.
	With(args ...any) Logger
}
