package pkgerror

import "net/http"

// ErrorCode classifies a failure for clients.
//
// Modules may declare their own codes; the built-in set is CommonCode.
type ErrorCode interface {
	// Code returns the stable machine-readable identifier.
	Code() string
	// Message returns the default human-readable message.
	Message() string
	// StatusCode returns the HTTP status associated with the code.
	StatusCode() int
}

// CommonCode is the built-in ErrorCode set shared by every module.
type CommonCode int

// The declaration order matters: FromHTTPStatus returns the first code whose
// status matches.
const (
	CodeBadRequest           CommonCode = iota // Missing or malformed request parameters.
	CodeInvalidArgument                        // Well-formed but invalid parameters.
	CodeUnauthorized                           // Caller is not authenticated.
	CodeForbidden                              // Caller may not perform the action.
	CodeNotFound                               // Resource or endpoint not found.
	CodeMethodNotAllowed                       // Endpoint exists, method does not.
	CodeNotAcceptable                          // Requested representation unavailable.
	CodeRequestTimeout                         // Client took too long.
	CodeConflict                               // Conflict with current state (e.g., duplicate entries).
	CodeUnsupportedMediaType                   // Request content type not supported.
	CodeUnprocessableEntity                    // Semantically invalid request.
	CodeTooManyRequests                        // Rate limited.
	CodeInternalError                          // Internal or unspecified error.
	CodeServiceUnavailable                     // Dependency or server unavailable.
	CodeGatewayTimeout                         // Upstream timed out.
)

//nolint:gochecknoglobals // read-only lookup table
var commonCodes = [...]struct {
	id     string
	msg    string
	status int
}{
	CodeBadRequest:           {"BAD_REQUEST", "request parameters are missing or malformed", http.StatusBadRequest},
	CodeInvalidArgument:      {"INVALID_ARGUMENT", "request parameters are invalid", http.StatusBadRequest},
	CodeUnauthorized:         {"UNAUTHORIZED", "unauthorized", http.StatusUnauthorized},
	CodeForbidden:            {"FORBIDDEN", "access denied", http.StatusForbidden},
	CodeNotFound:             {"NOT_FOUND", "resource not found", http.StatusNotFound},
	CodeMethodNotAllowed:     {"METHOD_NOT_ALLOWED", "method not allowed", http.StatusMethodNotAllowed},
	CodeNotAcceptable:        {"NOT_ACCEPTABLE", "not acceptable", http.StatusNotAcceptable},
	CodeRequestTimeout:       {"REQUEST_TIMEOUT", "request timeout", http.StatusRequestTimeout},
	CodeConflict:             {"CONFLICT", "resource conflict", http.StatusConflict},
	CodeUnsupportedMediaType: {"UNSUPPORTED_MEDIA_TYPE", "unsupported media type", http.StatusUnsupportedMediaType},
	CodeUnprocessableEntity:  {"UNPROCESSABLE_ENTITY", "request could not be processed", http.StatusUnprocessableEntity},
	CodeTooManyRequests:      {"TOO_MANY_REQUESTS", "too many requests", http.StatusTooManyRequests},
	CodeInternalError:        {"INTERNAL_ERROR", "internal server error", http.StatusInternalServerError},
	CodeServiceUnavailable:   {"SERVICE_UNAVAILABLE", "service unavailable", http.StatusServiceUnavailable},
	CodeGatewayTimeout:       {"GATEWAY_TIMEOUT", "gateway timeout", http.StatusGatewayTimeout},
}

func (c CommonCode) valid() bool {
	return c >= 0 && int(c) < len(commonCodes)
}

// Code implements ErrorCode. Unknown values report INTERNAL_ERROR.
func (c CommonCode) Code() string {
	if !c.valid() {
		return commonCodes[CodeInternalError].id
	}
	return commonCodes[c].id
}

// Message implements ErrorCode.
func (c CommonCode) Message() string {
	if !c.valid() {
		return commonCodes[CodeInternalError].msg
	}
	return commonCodes[c].msg
}

// StatusCode implements ErrorCode.
func (c CommonCode) StatusCode() int {
	if !c.valid() {
		return commonCodes[CodeInternalError].status
	}
	return commonCodes[c].status
}

func (c CommonCode) String() string {
	return c.Code()
}

// FromHTTPStatus maps an HTTP status to the first CommonCode carrying it.
//
// Statuses without an exact match fall back by class: 4xx to
// CodeBadRequest, everything else to CodeInternalError.
func FromHTTPStatus(status int) CommonCode {
	for i := range commonCodes {
		if commonCodes[i].status == status {
			return CommonCode(i)
		}
	}

	if status >= 400 && status < 500 {
		return CodeBadRequest
	}

	return CodeInternalError
}

type code struct {
	id     string
	msg    string
	status int
}

func (c code) Code() string    { return c.id }
func (c code) Message() string { return c.msg }
func (c code) StatusCode() int { return c.status }
func (c code) String() string  { return c.id }

// NewCode declares a module-specific ErrorCode.
//
// A status outside 100..599 is replaced by 500 so the code can always be
// written as a response status.
func NewCode(id, msg string, status int) ErrorCode {
	if status < 100 || status > 599 {
		status = http.StatusInternalServerError
	}
	return code{id: id, msg: msg, status: status}
}
