package pkgrouter

import "net/http"

// RequestRecorder counts handled requests by method and final status.
type RequestRecorder interface {
	RecordRequest(method string, status int)
}

// MiddlewareMetrics reports every request to rec once the response is written.
func MiddlewareMetrics(rec RequestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(sr, r)

			rec.RecordRequest(r.Method, sr.Status())
		})
	}
}
