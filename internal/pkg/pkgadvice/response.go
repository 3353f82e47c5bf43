package pkgadvice

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

// Response is the client-facing error envelope.
type Response struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// newResponse is the only place a Response is built, so the status always
// matches the code and the message is never empty.
func newResponse(code pkgerror.ErrorCode, path, msg string) Response {
	if msg == "" {
		msg = code.Message()
	}

	return Response{
		Code:    code.Code(),
		Status:  code.StatusCode(),
		Path:    path,
		Message: msg,
	}
}

// WriteResponse encodes resp as JSON using resp.Status as the HTTP status.
func WriteResponse(w http.ResponseWriter, resp Response) {
	WriteJSON(w, resp, resp.Status)
}

// WriteJSON writes data as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, data any, code int) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	//nolint:errcheck // client may be gone
	w.Write(append(body, '\n'))
}
