// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It helps keep error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing the ErrorCode contract (identifier, default message, HTTP
//     status) plus the built-in CommonCode set.
//   - Providing the failure carriers the router translates at the edge:
//     business errors, field validation errors, and status errors raised by
//     the router itself.
package pkgerror
