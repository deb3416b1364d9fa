package bresp_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/advdv/bresp"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// subRoute is the route universe of the mounted test application.
type subRoute int

const (
	routeHome subRoute = iota
	routeAbout
)

// rootRoute is the host application's route universe: plain paths.
type rootRoute string

func newTestMount() *bresp.Mount[subRoute, rootRoute] {
	sub := bresp.Table(map[subRoute]string{
		routeHome:  "/",
		routeAbout: "/about",
	}, map[subRoute][]string{
		routeHome:  {"public"},
		routeAbout: {"public", "docs"},
	})

	return &bresp.Mount[subRoute, rootRoute]{
		Routes: sub,
		Root: bresp.RouteSet[rootRoute]{
			Render: func(r rootRoute) string { return string(r) },
			Parse:  func(p string) (rootRoute, bool) { return rootRoute(p), true },
			Attrs: func(r rootRoute) []string {
				if strings.HasPrefix(string(r), "/sub") {
					return []string{"mounted"}
				}

				return nil
			},
		},
		ToRoot:  func(r subRoute) rootRoute { return rootRoute("/sub" + sub.Render(r)) },
		Prefix:  "/sub",
		App:     "sub-app",
		RootApp: "root-app",
	}
}

// nextRecorder records invocations of the next handler in the chain.
type nextRecorder struct {
	calls int
	path  string
}

func (n *nextRecorder) ServeHTTP(_ http.ResponseWriter, r *http.Request) {
	n.calls++
	n.path = r.URL.Path
}

func serve(
	tb testing.TB,
	h bresp.HandlerFunc[subRoute, rootRoute],
	target string,
	next http.Handler,
) *httptest.ResponseRecorder {
	tb.Helper()

	if next == nil {
		next = http.NotFoundHandler()
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	newTestMount().ToStd(h, bresp.NewTestLogger(tb))(next).ServeHTTP(rec, req)

	return rec
}

func httptestRecord(tb testing.TB, h http.Handler, target string) *httptest.ResponseRecorder {
	tb.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestFallthroughWhenNothingFinalized(t *testing.T) {
	next := &nextRecorder{}

	serve(t, func(c *bresp.Ctx[subRoute, rootRoute]) error {
		c.SetStatus(http.StatusTeapot) // mutation without finalization changes nothing
		c.SetHeader("X-Unused", "1")

		return nil
	}, "/sub/about", next)

	require.Equal(t, 1, next.calls)
	require.Equal(t, "/sub/about", next.path, "next must see the original request")
}

func TestExplicitNextFallsThrough(t *testing.T) {
	next := &nextRecorder{}

	rec := serve(t, func(c *bresp.Ctx[subRoute, rootRoute]) error {
		c.Next()
		c.Text("too late") // gate is closed, no payload

		return nil
	}, "/sub/", next)

	require.Equal(t, 1, next.calls)
	require.Empty(t, rec.Body.String())
}

func TestFinalizedSkipsNext(t *testing.T) {
	next := &nextRecorder{}

	rec := serve(t, func(c *bresp.Ctx[subRoute, rootRoute]) error {
		c.Text("mine")
		return nil
	}, "/sub/", next)

	require.Zero(t, next.calls)
	require.Equal(t, "mine", rec.Body.String())
}

func TestNextAfterFinalizerIsNoop(t *testing.T) {
	next := &nextRecorder{}

	rec := serve(t, func(c *bresp.Ctx[subRoute, rootRoute]) error {
		c.Text("first")
		c.Next()

		return nil
	}, "/sub/", next)

	require.Zero(t, next.calls)
	require.Equal(t, "first", rec.Body.String())
}

func TestHandlerErrorAnswersPlain500(t *testing.T) {
	mount := newTestMount()
	logs := bresp.NewTestLogger(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sub/", nil)

	h := bresp.HandlerFunc[subRoute, rootRoute](func(c *bresp.Ctx[subRoute, rootRoute]) error {
		c.Text("partial") // finalized payload is discarded on error
		return errors.New("boom")
	})

	mount.Handler(h, logs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, int64(1), logs.NumLogUnhandledServeError)
}

func TestTerminalHandlerAnswers404(t *testing.T) {
	mount := newTestMount()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/elsewhere", nil)

	h := bresp.HandlerFunc[subRoute, rootRoute](func(c *bresp.Ctx[subRoute, rootRoute]) error {
		if _, ok := c.Route(); !ok {
			c.Next()
		}

		return nil
	})

	mount.Handler(h, bresp.NewTestLogger(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChainOrder(t *testing.T) {
	var order []string

	tag := func(name string) bresp.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "inner")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bresp.Chain(inner, tag("outer"), tag("middle")).ServeHTTP(rec, req)

	require.Equal(t, []string{"outer", "middle", "inner"}, order)
}

func TestAppHandles(t *testing.T) {
	serve(t, func(c *bresp.Ctx[subRoute, rootRoute]) error {
		require.Equal(t, "sub-app", c.App())
		require.Equal(t, "root-app", c.RootApp())
		c.Next()

		return nil
	}, "/sub/", nil)
}
