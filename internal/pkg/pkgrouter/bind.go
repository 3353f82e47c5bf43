package pkgrouter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

// maxBindBytes caps the request body Bind will read.
const maxBindBytes = 1 << 20

// Validator checks a decoded request value.
type Validator interface {
	Validate(v any) error
}

// Bind decodes a JSON request body into dst and validates it.
//
// Content types other than application/json fail with a 415 status error,
// unreadable bodies with a 400 status error, and rule violations with the
// validator's pkgerror.ValidationError. A nil v skips validation.
func Bind(r *http.Request, dst any, v Validator) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !strings.EqualFold(mediaType, "application/json") {
			return pkgerror.NewStatus(http.StatusUnsupportedMediaType, fmt.Errorf("content type %q", ct))
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return pkgerror.NewStatus(http.StatusBadRequest, errors.New("empty request body"))
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBindBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		return pkgerror.NewStatus(http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
	}

	if v == nil {
		return nil
	}

	return v.Validate(dst)
}
