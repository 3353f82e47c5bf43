// Package pkgroutine runs named background tasks for the application.
//
// A Manager bounds how many tasks run at once, records returned errors and
// recovered panics, and lets the caller wait for everything during shutdown.
package pkgroutine
