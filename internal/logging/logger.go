// Package logging defines the structured logger used by services, the HTTP
// layer and the CLI.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "device bound", "employee_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Nop discards everything. Services fall back to it when no logger is wired.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any) {}
func (Nop) Warn(context.Context, string, ...any) {}
func (Nop) Error(context.Context, string, ...any) {}
func (nop Nop) With(...any) Logger { return nop }
