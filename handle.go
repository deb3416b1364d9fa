package bresp

import (
	"net/http"
)

// Handler handles one request through the per-request builder state. The
// handler body is the operation sequence: it always runs to completion, and
// only then does the driver resolve the request. Operations after the first
// finalizer still execute, they just no longer affect the payload.
type Handler[L, M any] interface {
	ServeBResp(c *Ctx[L, M]) error
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc[L, M any] func(*Ctx[L, M]) error

// ServeBResp implements the [Handler] interface.
func (f HandlerFunc[L, M]) ServeBResp(c *Ctx[L, M]) error { return f(c) }

// Middleware is the standard http middleware shape the driver produces and
// composes with.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with middleware. The order is that of the Gorilla and Chi
// routers: the middleware provided first is the outer most wrapping, the one
// provided last is closest to the handler.
func Chain(h http.Handler, m ...Middleware) http.Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}

// ToStd adapts handler h into standard middleware. Per request it parses the
// sub route from the path (absent when nothing matches), builds fresh
// per-request state and runs h to completion. Then it resolves: a finalized
// payload is written out, anything else hands the untouched request to next,
// exactly once. An error from h is logged and answered with a plain 500 so
// the client never ends up with an empty reply.
func (m *Mount[L, M]) ToStd(h Handler[L, M], logs Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var route *L
			if sub, ok := m.parseSub(r.URL.Path); ok {
				route = &sub
			}

			c := newCtx(m, route, r)

			if err := h.ServeBResp(c); err != nil {
				logs.LogUnhandledServeError(err)
				http.Error(w,
					http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError)

				return
			}

			if err := c.deliver(w, r, next); err != nil {
				logs.LogDeliverError(err)
			}
		})
	}
}

// Handler is [Mount.ToStd] for terminal placement in a chain: when nothing
// finalizes, the fall-through answers 404 the way a mux would for an unknown
// path.
func (m *Mount[L, M]) Handler(h Handler[L, M], logs Logger) http.Handler {
	return m.ToStd(h, logs)(http.NotFoundHandler())
}
