package pkgrouter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

type bindTarget struct {
	Name string `json:"name"`
}

type rejectEmpty struct{}

func (rejectEmpty) Validate(v any) error {
	if v.(*bindTarget).Name == "" {
		return pkgerror.NewInvalidField("name", "must not be blank")
	}
	return nil
}

func newBindRequest(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var serr *pkgerror.StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *pkgerror.StatusError, got %T (%v)", err, err)
	}
	return serr.Status()
}

func TestBindDecodesAndValidates(t *testing.T) {
	var dst bindTarget
	if err := Bind(newBindRequest("application/json; charset=utf-8", `{"name":"bob"}`), &dst, rejectEmpty{}); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if dst.Name != "bob" {
		t.Fatalf("unexpected name: %q", dst.Name)
	}
}

func TestBindWithoutContentTypeIsAccepted(t *testing.T) {
	var dst bindTarget
	if err := Bind(newBindRequest("", `{"name":"bob"}`), &dst, nil); err != nil {
		t.Fatalf("Bind: %v", err)
	}
}

func TestBindUnsupportedMediaType(t *testing.T) {
	var dst bindTarget
	err := Bind(newBindRequest("text/plain", `name=bob`), &dst, nil)
	if got := statusOf(t, err); got != http.StatusUnsupportedMediaType {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestBindMalformedBody(t *testing.T) {
	var dst bindTarget
	err := Bind(newBindRequest("application/json", `{"name":`), &dst, nil)
	if got := statusOf(t, err); got != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestBindEmptyBody(t *testing.T) {
	var dst bindTarget
	err := Bind(newBindRequest("application/json", ``), &dst, nil)
	if got := statusOf(t, err); got != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestBindValidationFailure(t *testing.T) {
	var dst bindTarget
	err := Bind(newBindRequest("application/json", `{"name":""}`), &dst, rejectEmpty{})

	var verr *pkgerror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %T", err)
	}
}
