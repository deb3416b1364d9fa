// Package bresp builds HTTP responses imperatively for sub-applications
// mounted inside a larger routed application.
//
// # Overview
//
// bresp gives a handler one builder value per request, the [Ctx]. The handler
// accumulates status and headers on it through any number of steps, and the
// first step that decides on a payload wins: every later payload decision is
// a silent no-op. When no step decides at all, the request falls through to
// the next handler in the middleware chain. This makes generic steps safe to
// run after specific ones, and makes "not my request" a first-class outcome.
//
// A minimal example:
//
//	m := &bresp.Mount[Route, RootRoute]{ /* universes, translation, prefix */ }
//
//	h := bresp.HandlerFunc[Route, RootRoute](func(c *bresp.Ctx[Route, RootRoute]) error {
//	    route, ok := c.Route()
//	    if !ok {
//	        c.Next() // not ours, fall through
//	        return nil
//	    }
//	    c.SetHeader("Cache-Control", "no-store")
//	    return c.JSON(map[string]any{"route": route})
//	})
//
//	mux.Handle("/sub/", m.Handler(h, bresp.NewStdLogger(log.Default())))
//
// # Write-once finalization
//
// [Ctx.Text], [Ctx.HTML], [Ctx.CSS], [Ctx.JavaScript], [Ctx.JSON],
// [Ctx.Content], [Ctx.SendBytes], [Ctx.SendFile], [Ctx.SendStream] and
// [Ctx.Next] all go through a single write-once gate. The first call
// snapshots the pending status and headers together with the payload;
// everything called afterwards still runs but no longer affects the
// response. [Ctx.SetStatus] and [Ctx.SetHeader] stay callable at any point,
// only their pre-finalization values are observable.
//
// Headers accumulate most-recent-first and are never deduplicated: set the
// same name three times and the response carries all three values.
//
// # Fall-through
//
// A handler that never finalizes, or that calls [Ctx.Next], resolves by
// invoking the next handler exactly once with the original, untouched
// request. [Mount.ToStd] produces standard func(http.Handler) http.Handler
// middleware so the chain composes with any router; [Chain] wraps a stack in
// first-is-outermost order.
//
// # Request view
//
// [Ctx.Body] reads the request body once and caches the bytes for the rest
// of the request; [Ctx.BindJSON] decodes the cached bytes into a caller
// shape and [Ctx.BodyField] extracts single values by gjson path. Failures
// surface as [*BodyReadError] and [*DecodeError] values, matched with
// [AsBodyReadError] and [AsDecodeError].
//
// # Route universes
//
// A mounted sub-application lives in its own route universe L while the
// enclosing application routes in universe M. Each universe supplies its
// capabilities as a [RouteSet]: render a route to a path, parse a path back,
// look up attribute tags. The [Mount] carries both sets plus a pure ToRoot
// translation function; translation is a capability, not a type relation.
//
// [Ctx.RenderSub] renders a sub route by translating first, so it always
// equals [Ctx.RenderRoot] of the translated route. [Ctx.ParseSub] strips the
// mount prefix and parses with the sub universe's own parser.
// [Ctx.RouteAttributes] and [Ctx.RootRouteAttributes] return the tags of the
// matched route in either universe, and are empty when nothing matched.
//
// # Concurrency
//
// A [Ctx] is owned exclusively by one request's execution and needs no
// locking. The only cross-request state is the [Mount] itself, which is
// read-only after setup.
package bresp
