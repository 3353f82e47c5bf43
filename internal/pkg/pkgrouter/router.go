package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgadvice"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error,
// which is handed to the pkgadvice.Translator.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr      *httprouter.Router
	tr      *pkgadvice.Translator
	encoder func(ctx context.Context, w http.ResponseWriter, resp any)
	mws     []Middleware
	global  []Middleware
	handler http.Handler
}

// NewRouter builds the default application router with standard middleware.
//
// Every failure, including unknown routes and disallowed methods, is written
// by tr.
func NewRouter(uuid Generator, tr *pkgadvice.Translator) *Router {
	if tr == nil {
		tr = pkgadvice.NewTranslator(nil)
	}

	base := []Middleware{
		middlewareCorrelationID(uuid),
		middlewareLogging,
		middlewareRecoverer(tr),
	}

	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound: Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tr.WriteFailure(w, r, pkgadvice.DispatchFailure{Status: http.StatusNotFound})
		}), base...),
		MethodNotAllowed: Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tr.WriteFailure(w, r, pkgadvice.DispatchFailure{Status: http.StatusMethodNotAllowed})
		}), base...),
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		msg := "request has been successfully"
		if m, ok := resp.(interface {
			Message() string
		}); ok {
			msg = m.Message()
		}

		pkgadvice.WriteJSON(w, successReponse{
			Message: msg,
			Data:    resp,
		}, code)
	}

	ro := &Router{
		hr:      hr,
		tr:      tr,
		encoder: okCodec,
		mws:     base,
		handler: hr,
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkgadvice.WriteJSON(w, map[string]string{"message": "hi from goadvice"}, http.StatusOK)
	}))

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkgadvice.WriteJSON(w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	return ro
}

// Use appends middleware to the existing middleware stack. It only affects
// routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// Wrap adds middleware around the whole router. Unlike Use it covers every
// route regardless of registration order, plus unknown routes and
// disallowed methods, and it runs outside panic recovery.
func (r *Router) Wrap(mws ...Middleware) {
	r.global = append(r.global, mws...)
	r.handler = Chain(r.hr, r.global...)
}

// UseRateLimit rejects requests over the per-client limit with a
// TOO_MANY_REQUESTS envelope.
func (r *Router) UseRateLimit(rl *RateLimiter) {
	r.Use(middlewareRateLimit(rl, r.tr))
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, r.chain(mws)...))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.tr.Write(w, re, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), r.chain(mws)...))
}

func (r *Router) chain(extra []Middleware) []Middleware {
	all := make([]Middleware, 0, len(r.mws)+len(extra))
	all = append(all, r.mws...)
	return append(all, extra...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

type successReponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
