package pkgrouter

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maskedValue  = "***"
	binaryMarker = "<binary body omitted>"
)

//nolint:gochecknoglobals // read-only lookup
var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"new_password":     {},
	"current_password": {},
	"secret":           {},
	"api_key":          {},
	"x-api-key":        {},
	"access_token":     {},
	"refresh_token":    {},
	"authorization":    {},
	"cookie":           {},
	"set-cookie":       {},
}

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, maskedValue)
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if isSensitive(k) {
				masked[k] = maskedValue
				continue
			}
			masked[k] = maskData(inner)
		}
		return masked
	case []any:
		res := make([]any, len(val))
		for i, inner := range val {
			res[i] = maskData(inner)
		}
		return res
	default:
		return v
	}
}

// loggableBody turns a request or response body into something safe to log:
// masked JSON, masked form values, plain text, or a marker for binary data.
func loggableBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return maskData(decoded)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			masked := make(map[string]any, len(values))
			for k, v := range values {
				switch {
				case isSensitive(k):
					masked[k] = maskedValue
				case len(v) == 1:
					masked[k] = v[0]
				default:
					masked[k] = v
				}
			}
			return masked
		}
	}

	if !utf8.Valid(body) {
		return binaryMarker
	}
	return string(body)
}
