package bresp

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Request returns the underlying request for direct access to anything the
// view methods don't cover: method, url, cookies and so on.
func (c *Ctx[L, M]) Request() *http.Request { return c.req }

// RequestHeader looks up a single request header, case-insensitively. The
// second return is false when the header is absent; with duplicates the first
// value wins.
func (c *Ctx[L, M]) RequestHeader(name string) (string, bool) {
	vals := c.req.Header.Values(name)
	if len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

// RequestHeaders returns the full request header list. The transport keeps
// headers in a map so names are emitted in sorted order, with the value order
// per name preserved.
func (c *Ctx[L, M]) RequestHeaders() []Header {
	names := lo.Keys(c.req.Header)
	sort.Strings(names)

	return lo.FlatMap(names, func(name string, _ int) []Header {
		return lo.Map(c.req.Header[name], func(v string, _ int) Header {
			return Header{Name: name, Value: v}
		})
	})
}

// Body returns the full request body. The first call reads the underlying
// stream to exhaustion and caches the bytes; every later call returns the
// same bytes without touching the stream again, so consuming the transport
// stream twice is impossible by construction.
func (c *Ctx[L, M]) Body() ([]byte, error) {
	if c.bodyRead {
		return c.body, nil
	}

	buf, err := io.ReadAll(c.req.Body)
	if err != nil {
		return nil, newBodyReadError(err)
	}

	c.body, c.bodyRead = buf, true

	return c.body, nil
}

// BindJSON decodes the request body into v. The bytes come from the body
// cache but the decoded value is never cached: each call decodes anew.
// Malformed or mismatched input returns a [*DecodeError].
func (c *Ctx[L, M]) BindJSON(v any) error {
	buf, err := c.Body()
	if err != nil {
		return err
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return newDecodeError(err)
	}

	return nil
}

// BodyField extracts a single value from a JSON request body by gjson path
// without decoding into a full shape. It shares the body cache with [Ctx.Body].
func (c *Ctx[L, M]) BodyField(path string) (gjson.Result, error) {
	buf, err := c.Body()
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(buf) {
		return gjson.Result{}, newDecodeError(errors.New("invalid json document"))
	}

	return gjson.GetBytes(buf, path), nil
}

// Route returns the matched route in the sub universe, false when no route
// matched (a catch-all or static path).
func (c *Ctx[L, M]) Route() (L, bool) {
	if c.route == nil {
		var zero L
		return zero, false
	}

	return *c.route, true
}

// RootRoute returns the matched route translated to the root universe, false
// when no route matched.
func (c *Ctx[L, M]) RootRoute() (M, bool) {
	if c.route == nil {
		var zero M
		return zero, false
	}

	return c.mount.ToRoot(*c.route), true
}

// RouteAttributes returns the attribute tags of the matched route in the sub
// universe, empty when no route matched.
func (c *Ctx[L, M]) RouteAttributes() []string {
	if c.route == nil {
		return nil
	}

	return c.mount.Routes.attributes(*c.route)
}

// RootRouteAttributes returns the attribute tags of the matched route in the
// root universe, looked up through the translated route. Empty when no route
// matched.
func (c *Ctx[L, M]) RootRouteAttributes() []string {
	if c.route == nil {
		return nil
	}

	return c.mount.Root.attributes(c.mount.ToRoot(*c.route))
}
