// Package slog provides decorators that log calls to proddesc services with
// log/slog. Calls are logged at debug level, so they only show up when the
// handler is configured for verbose output.
package slog
