package pkgrouter

import (
	"net/http"
	"strings"
	"testing"
)

func TestNormalizeCID(t *testing.T) {
	if got := normalizeCID("  abc  "); got != "abc" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := normalizeCID("\n"); got != "" {
		t.Fatalf("expected empty for newline, got %q", got)
	}
	if got := normalizeCID(strings.Repeat("a", 200)); len(got) != 128 {
		t.Fatalf("expected length 128, got %d", len(got))
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "secret")
	headers.Set("X-Api-Key", "k")
	headers.Set("X-Trace", "ok")

	masked := maskHeaders(headers)
	if masked.Get("Authorization") != maskedValue || masked.Get("X-Api-Key") != maskedValue {
		t.Fatalf("expected masked credentials, got %v", masked)
	}
	if got := masked.Get("X-Trace"); got != "ok" {
		t.Fatalf("expected X-Trace to stay, got %q", got)
	}
	if got := headers.Get("Authorization"); got != "secret" {
		t.Fatalf("expected original headers unchanged, got %q", got)
	}
}

func TestMaskDataNested(t *testing.T) {
	input := map[string]any{
		"password": "secret",
		"profile":  map[string]any{"access_token": "token"},
		"items":    []any{map[string]any{"refresh_token": "rt"}},
	}

	masked := maskData(input).(map[string]any)
	if masked["password"] != maskedValue {
		t.Fatalf("expected masked password")
	}
	if masked["profile"].(map[string]any)["access_token"] != maskedValue {
		t.Fatalf("expected masked access_token")
	}
	if masked["items"].([]any)[0].(map[string]any)["refresh_token"] != maskedValue {
		t.Fatalf("expected masked refresh_token")
	}
}

func TestLoggableBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        []byte
		check       func(t *testing.T, got any)
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        []byte(`{"password":"secret","name":"bob"}`),
			check: func(t *testing.T, got any) {
				m := got.(map[string]any)
				if m["password"] != maskedValue || m["name"] != "bob" {
					t.Fatalf("unexpected json body: %v", m)
				}
			},
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        []byte("password=secret&name=bob&tag=a&tag=b"),
			check: func(t *testing.T, got any) {
				m := got.(map[string]any)
				if m["password"] != maskedValue || m["name"] != "bob" || len(m["tag"].([]string)) != 2 {
					t.Fatalf("unexpected form body: %v", m)
				}
			},
		},
		{
			name:        "binary",
			contentType: "text/plain",
			body:        []byte{0xff, 0xfe, 0xfd},
			check: func(t *testing.T, got any) {
				if got != binaryMarker {
					t.Fatalf("expected binary marker, got %v", got)
				}
			},
		},
		{
			name: "empty",
			check: func(t *testing.T, got any) {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, loggableBody(tt.contentType, tt.body))
		})
	}
}
