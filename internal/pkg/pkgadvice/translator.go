package pkgadvice

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

// Recorder receives one observation per translated failure.
type Recorder interface {
	RecordFailure(kind, code string, status int)
}

// Translator turns failures into Responses. It keeps no state between calls
// and is safe for concurrent use.
type Translator struct {
	log      *slog.Logger
	recorder Recorder
}

// Option configures a Translator.
type Option func(*Translator)

// WithRecorder attaches a Recorder, typically Prometheus counters.
func WithRecorder(rec Recorder) Option {
	return func(t *Translator) {
		t.recorder = rec
	}
}

// NewTranslator returns a Translator that logs to log. A nil log uses
// slog.Default at call time.
func NewTranslator(log *slog.Logger, opts ...Option) *Translator {
	t := &Translator{log: log}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Translator) logger() *slog.Logger {
	if t.log == nil {
		return slog.Default()
	}
	return t.log
}

func (t *Translator) record(kind Kind, resp Response) Response {
	if t.recorder != nil {
		t.recorder.RecordFailure(kind.String(), resp.Code, resp.Status)
	}
	return resp
}

// HandleValidationFailure answers BAD_REQUEST with the joined field messages.
func (t *Translator) HandleValidationFailure(ctx context.Context, fields []pkgerror.FieldError, path string) Response {
	code := pkgerror.CodeBadRequest
	resp := newResponse(code, path, pkgerror.JoinMessages(fields))

	t.logger().WarnContext(ctx, "request validation failed",
		"path", path,
		"fields", len(fields),
		"message", resp.Message,
	)

	return t.record(KindValidation, resp)
}

// HandleBusiness answers with the error's own code (INTERNAL_ERROR when
// absent) and its message verbatim.
func (t *Translator) HandleBusiness(ctx context.Context, err *pkgerror.Error, path string) Response {
	if err == nil {
		return t.HandleGeneric(ctx, nil, nil, path)
	}

	code := err.Code()
	resp := newResponse(code, path, err.Msg())

	t.logger().ErrorContext(ctx, "business error",
		"path", path,
		"code", code.Code(),
		"error", err.String(),
	)

	return t.record(KindBusiness, resp)
}

// HandleGeneric answers INTERNAL_ERROR with its default message. The raw
// error and stack only reach the log.
func (t *Translator) HandleGeneric(ctx context.Context, err error, stack []byte, path string) Response {
	code := pkgerror.CodeInternalError
	resp := newResponse(code, path, code.Message())

	attrs := []any{"path", path, "error", errorText(err)}
	if len(stack) > 0 {
		attrs = append(attrs, "stack", string(stack))
	}
	t.logger().ErrorContext(ctx, "unhandled server error", attrs...)

	return t.record(KindGeneric, resp)
}

// HandleDispatchFailure maps a router-level status to its nearest code and
// answers with that code's default message.
func (t *Translator) HandleDispatchFailure(ctx context.Context, status int, err error, path string) Response {
	code := pkgerror.FromHTTPStatus(status)
	resp := newResponse(code, path, code.Message())

	t.logger().ErrorContext(ctx, "request dispatch failed",
		"path", path,
		"status", status,
		"code", code.Code(),
		"error", errorText(err),
	)

	return t.record(KindDispatch, resp)
}

// Translate dispatches f to the matching handler.
func (t *Translator) Translate(ctx context.Context, f Failure, path string) Response {
	switch v := f.(type) {
	case ValidationFailure:
		return t.HandleValidationFailure(ctx, v.Fields, path)
	case BusinessFailure:
		return t.HandleBusiness(ctx, v.Err, path)
	case DispatchFailure:
		return t.HandleDispatchFailure(ctx, v.Status, v.Err, path)
	case GenericFailure:
		return t.HandleGeneric(ctx, v.Err, v.Stack, path)
	default:
		return t.HandleGeneric(ctx, nil, nil, path)
	}
}

// Write classifies err, translates it for r and writes the Response.
func (t *Translator) Write(w http.ResponseWriter, r *http.Request, err error) {
	t.WriteFailure(w, r, Classify(err))
}

// WriteFailure translates f for r and writes the Response.
func (t *Translator) WriteFailure(w http.ResponseWriter, r *http.Request, f Failure) {
	WriteResponse(w, t.Translate(r.Context(), f, r.URL.Path))
}

func errorText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
