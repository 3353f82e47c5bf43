// Package pkglog sets up the process-wide slog logger.
//
// Records are JSON with short file:line sources, the service name, and the
// request correlation ID whenever the context carries one. Error translation
// relies on that last part to tie a client-facing envelope to its log line.
package pkglog
