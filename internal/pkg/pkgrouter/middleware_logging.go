package pkgrouter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var reqBody []byte
		var reqTruncated bool
		if r.Body != nil && r.Body != http.NoBody {
			reqBody, reqTruncated = peekBody(r)
		}

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"headers", maskHeaders(r.Header),
			"body", loggableBody(r.Header.Get("Content-Type"), reqBody),
			"body_truncated", reqTruncated,
		)

		rec := &statusRecorder{ResponseWriter: w, body: &bytes.Buffer{}}
		next.ServeHTTP(rec, r)

		status := rec.Status()
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		if status >= http.StatusBadRequest {
			if code := envelopeCode(rec.body.Bytes()); code != "" {
				attrs = append(attrs, "error_code", code)
			}
		}
		attrs = append(attrs, "body", loggableBody(w.Header().Get("Content-Type"), rec.body.Bytes()))
		if rec.truncated {
			attrs = append(attrs, "body_truncated", true)
		}

		slog.Log(r.Context(), level, "response sent", attrs...)
	})
}

type peekedBody struct {
	io.Reader
	io.Closer
}

// peekBody reads at most maxLoggedBodyBytes of the request body for logging
// and puts the bytes back in front of the unread rest, so handlers still see
// the full body.
func peekBody(r *http.Request) ([]byte, bool) {
	//nolint:errcheck // best effort, a broken body surfaces again in Bind
	head, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
	r.Body = peekedBody{Reader: io.MultiReader(bytes.NewReader(head), r.Body), Closer: r.Body}

	if len(head) > maxLoggedBodyBytes {
		return head[:maxLoggedBodyBytes], true
	}
	return head, false
}

// envelopeCode extracts the "code" member of an error envelope body.
func envelopeCode(body []byte) string {
	var env struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Code
}
