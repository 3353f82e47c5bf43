package pkgrouter

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

type hijackableWriter struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackableWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	return nil, nil, nil
}

func TestStatusRecorderHijack(t *testing.T) {
	inner := &hijackableWriter{ResponseRecorder: httptest.NewRecorder()}
	var w http.ResponseWriter = &statusRecorder{ResponseWriter: inner}

	hj, ok := w.(http.Hijacker)
	if !ok {
		t.Fatalf("statusRecorder does not implement http.Hijacker")
	}
	if _, _, err := hj.Hijack(); err != nil || !inner.hijacked {
		t.Fatalf("hijack not forwarded: err=%v hijacked=%v", err, inner.hijacked)
	}

	plain := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if _, _, err := plain.Hijack(); err == nil {
		t.Fatalf("expected error when the underlying writer cannot hijack")
	}
	if err := plain.Push("/app.js", nil); err != http.ErrNotSupported {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}

func TestStatusRecorderStatusDefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if rec.Status() != http.StatusOK {
		t.Fatalf("unexpected default status: %d", rec.Status())
	}

	rec.WriteHeader(http.StatusTeapot)
	rec.WriteHeader(http.StatusOK)
	if rec.Status() != http.StatusTeapot {
		t.Fatalf("expected first written status, got %d", rec.Status())
	}
}
