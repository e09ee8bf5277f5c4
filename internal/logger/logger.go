// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog.Logger with the constructors and
// context helpers the solvetrack binaries share.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Err, Fatal and friends) is available on *Logger directly. Request
// handling code should not hold a logger of its own; it obtains the
// request-scoped one through FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide *Logger for the given role label
// ("solvetrack-server", "solvetrack-client").
//
// Every entry carries the role, a "time" timestamp, and a "func" caller
// field holding the fully-qualified function name rather than zerolog's
// default file:line. The global level is Debug and output is JSON on
// stdout.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a *Logger inheriting the receiver's fields.
// Enriching the child does not touch the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped *Logger that middleware stored in
// the request context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the *Logger stored in ctx. When ctx carries none,
// zerolog hands back its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
