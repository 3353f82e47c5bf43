// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON binding, logging, recovery, rate limiting, request metrics, and
// correlation ID propagation. Every failure is handed to a
// pkgadvice.Translator, so clients always receive the same error envelope.
package pkgrouter
