// Package pkgadvice translates request failures into the uniform JSON error
// envelope returned to clients.
//
// Every failure the router sees falls into one of four kinds:
//   - Validation: the client sent invalid input (pkgerror.ValidationError).
//   - Business: handler code raised a domain rule violation (pkgerror.Error).
//   - Dispatch: the router could not serve the request (pkgerror.StatusError).
//   - Generic: anything else, including recovered panics.
//
// The Translator logs the full detail and returns a sanitized Response whose
// status always comes from the resolved pkgerror.ErrorCode.
package pkgadvice
