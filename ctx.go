package bresp

import (
	"net/http"
)

// Ctx is the builder state for handling a single request. The execution
// driver creates one per request, the handler mutates it through the
// accumulator and view methods, and it is discarded once the response is
// delivered or handling falls through to the next handler. It is owned
// exclusively by one request and must not be shared.
//
// L is the route type of the sub-application's own universe, M the route
// type of the root application it is mounted in.
type Ctx[L, M any] struct {
	mount *Mount[L, M]
	req   *http.Request
	route *L

	body     []byte
	bodyRead bool

	status  int
	headers []Header
	final   *finalResponse
}

// Header is a single pending (name, value) pair for the response. The pending
// list keeps the most recently added pair first and never deduplicates.
type Header struct {
	Name  string
	Value string
}

func newCtx[L, M any](m *Mount[L, M], route *L, r *http.Request) *Ctx[L, M] {
	return &Ctx[L, M]{
		mount:  m,
		req:    r,
		route:  route,
		status: http.StatusOK,
	}
}

// App returns the sub-application's shared data handle as configured on the
// mount. It is shared read-only across all requests.
func (c *Ctx[L, M]) App() any { return c.mount.App }

// RootApp returns the root application's shared data handle.
func (c *Ctx[L, M]) RootApp() any { return c.mount.RootApp }
