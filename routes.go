package bresp

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// RouteSet bundles the capabilities a route universe must provide: rendering
// a route to a path, parsing a path back to a route, and looking up the
// attribute tags of a route. Each universe supplies its own set; there is no
// subtype relation between universes.
type RouteSet[R any] struct {
	Render func(R) string
	Parse  func(string) (R, bool)
	Attrs  func(R) []string
}

// attributes tolerates a nil Attrs capability.
func (s RouteSet[R]) attributes(r R) []string {
	if s.Attrs == nil {
		return nil
	}

	return s.Attrs(r)
}

// Table builds a RouteSet from a route↔path table, with optional attribute
// tags per route. It suits enumerable universes; parsing goes through the
// inverted table so it round-trips with rendering by construction.
func Table[R comparable](paths map[R]string, attrs map[R][]string) RouteSet[R] {
	inverse := lo.Invert(paths)

	return RouteSet[R]{
		Render: func(r R) string { return paths[r] },
		Parse: func(p string) (R, bool) {
			r, ok := inverse[p]
			return r, ok
		},
		Attrs: func(r R) []string { return attrs[r] },
	}
}

// Param is one query string pair. Order is preserved as given.
type Param struct {
	Key   string
	Value string
}

// renderQuery appends the ordered query pairs to a rendered path.
func renderQuery(path string, params []Param) string {
	if len(params) == 0 {
		return path
	}

	var sb strings.Builder

	sb.WriteString(path)

	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

// Mount describes one sub-application mounted inside a root application: the
// two route universes, the pure translation from sub routes to root routes,
// the path prefix the root router mounts the sub-application under, and the
// shared application data handles of both. A Mount is built once at setup and
// read-only afterwards.
type Mount[L, M any] struct {
	Routes RouteSet[L] // the sub universe
	Root   RouteSet[M] // the root universe
	ToRoot func(L) M   // pure sub→root route translation
	Prefix string      // mount prefix within the root path space

	App     any // sub application data, shared read-only across requests
	RootApp any // root application data, shared read-only across requests
}

// parseSub strips the mount prefix and hands the remainder to the sub parser.
func (m *Mount[L, M]) parseSub(path string) (L, bool) {
	sub, ok := strings.CutPrefix(path, m.Prefix)
	if !ok {
		var zero L
		return zero, false
	}

	if sub == "" {
		sub = "/"
	}

	return m.Routes.Parse(sub)
}

// RenderRoot renders a root-universe route to a path.
func (c *Ctx[L, M]) RenderRoot(r M) string { return c.mount.Root.Render(r) }

// RenderRootQuery renders a root-universe route with an ordered query string
// appended.
func (c *Ctx[L, M]) RenderRootQuery(r M, params ...Param) string {
	return renderQuery(c.mount.Root.Render(r), params)
}

// ParseRoot parses a path in the root universe.
func (c *Ctx[L, M]) ParseRoot(path string) (M, bool) { return c.mount.Root.Parse(path) }

// RenderSub renders a sub-universe route to its root-universe path. It is
// defined as rendering the translated route, so callers never translate by
// hand and the rendered path is always the one the root application routes
// to.
func (c *Ctx[L, M]) RenderSub(r L) string {
	return c.mount.Root.Render(c.mount.ToRoot(r))
}

// RenderSubQuery renders a sub-universe route with an ordered query string
// appended.
func (c *Ctx[L, M]) RenderSubQuery(r L, params ...Param) string {
	return renderQuery(c.RenderSub(r), params)
}

// ParseSub parses a root-universe path back to a sub route by stripping the
// mount prefix and handing the remainder to the sub parser. It inverts
// [Ctx.RenderSub] for every mount whose translation renders under its prefix.
func (c *Ctx[L, M]) ParseSub(path string) (L, bool) {
	return c.mount.parseSub(path)
}
