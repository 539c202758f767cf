// Package logging defines the minimal structured-logging interface used
// across the server. The variadic args are key-value pairs, e.g.
//
//	log.Info(ctx, "document stored", "docId", id, "owner", ownerID)
package logging

import "context"

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
