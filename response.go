package bresp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Content types emitted by the finalizing helpers.
const (
	TypePlain      = "text/plain; charset=utf-8"
	TypeHTML       = "text/html; charset=utf-8"
	TypeCSS        = "text/css; charset=utf-8"
	TypeJavaScript = "text/javascript; charset=utf-8"
	TypeJSON       = "application/json; charset=utf-8"
)

// finalResponse snapshots status, headers and the payload decision at the
// moment of finalization. Header and status mutation afterwards never
// reaches it.
type finalResponse struct {
	status  int
	headers []Header
	body    descriptor
}

// descriptor is the payload decision of a finalized response. The transport
// layer renders it at delivery time.
type descriptor interface {
	render(status int, w http.ResponseWriter, r *http.Request) error
}

type bytesBody []byte

func (b bytesBody) render(status int, w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(status)
	_, err := w.Write(b)

	return errors.Wrap(err, "write response body")
}

type fileBody string

// render delegates entirely to the standard library's file serving: status,
// ranges and caching headers are owned there, not here.
func (f fileBody) render(_ int, w http.ResponseWriter, r *http.Request) error {
	http.ServeFile(w, r, string(f))
	return nil
}

type streamBody func(io.Writer) error

func (s streamBody) render(status int, w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(status)
	if err := s(w); err != nil {
		return errors.Wrap(err, "stream response body")
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}

// nextBody marks the response as "hand off to the next handler". It occupies
// the same write-once slot as the real payloads so the two decisions exclude
// each other.
type nextBody struct{}

func (nextBody) render(int, http.ResponseWriter, *http.Request) error { return nil }

// SetHeader queues a response header. Pairs are kept most recent first and
// duplicates all survive into the response. Calling it after finalization is
// allowed but the finalized response no longer observes the pending list.
func (c *Ctx[L, M]) SetHeader(name, value string) {
	c.headers = append([]Header{{name, value}}, c.headers...)
}

// SetStatus overwrites the pending response status, 200 initially. The status
// that counts is the one current when the first finalizer runs.
func (c *Ctx[L, M]) SetStatus(code int) { c.status = code }

// finalize is the single write-once gate of the package: the first payload
// decision snapshots the pending status and headers, every later call is a
// no-op.
func (c *Ctx[L, M]) finalize(body descriptor) {
	if c.final != nil {
		return
	}

	c.final = &finalResponse{
		status:  c.status,
		headers: append([]Header(nil), c.headers...),
		body:    body,
	}
}

// Finalized reports whether a payload decision was already made.
func (c *Ctx[L, M]) Finalized() bool { return c.final != nil }

// Text finalizes with a text/plain UTF-8 payload.
func (c *Ctx[L, M]) Text(s string) { c.Content(TypePlain, []byte(s)) }

// HTML finalizes with a text/html UTF-8 payload.
func (c *Ctx[L, M]) HTML(s string) { c.Content(TypeHTML, []byte(s)) }

// CSS finalizes with a text/css UTF-8 payload.
func (c *Ctx[L, M]) CSS(s string) { c.Content(TypeCSS, []byte(s)) }

// JavaScript finalizes with a text/javascript UTF-8 payload.
func (c *Ctx[L, M]) JavaScript(s string) { c.Content(TypeJavaScript, []byte(s)) }

// JSON encodes v and finalizes with an application/json payload. When a
// payload was already decided nothing happens, not even the encode.
func (c *Ctx[L, M]) JSON(v any) error {
	if c.final != nil {
		return nil
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode json response body")
	}

	c.Content(TypeJSON, buf)

	return nil
}

// Content sets the Content-Type header and finalizes with the raw payload.
func (c *Ctx[L, M]) Content(contentType string, body []byte) {
	c.SetHeader("Content-Type", contentType)
	c.finalize(bytesBody(body))
}

// SendBytes finalizes with a raw byte payload. Content-Type is whatever the
// pending headers say, nothing is sniffed or added.
func (c *Ctx[L, M]) SendBytes(b []byte) { c.finalize(bytesBody(b)) }

// SendFile finalizes with a file payload. The file is served at delivery time
// through http.ServeFile which owns status, range and caching behavior.
func (c *Ctx[L, M]) SendFile(path string) { c.finalize(fileBody(path)) }

// SendStream finalizes with a push-style payload: at delivery fn writes the
// body directly to the response writer.
func (c *Ctx[L, M]) SendStream(fn func(io.Writer) error) { c.finalize(streamBody(fn)) }

// Next finalizes with the fall-through marker: delivery hands the untouched
// request to the next handler in the chain. It sits behind the same
// write-once gate, so a Next after any finalizer, or any finalizer after a
// Next, is a no-op.
func (c *Ctx[L, M]) Next() { c.finalize(nextBody{}) }

// deliver resolves the request. A finalized payload is written out with its
// snapshot of status and headers, in most-recent-first order and without
// deduplication. The fall-through marker, or no finalization at all, invokes
// next exactly once with the original request.
func (c *Ctx[L, M]) deliver(w http.ResponseWriter, r *http.Request, next http.Handler) error {
	if c.final == nil {
		next.ServeHTTP(w, r)
		return nil
	}

	if _, ok := c.final.body.(nextBody); ok {
		next.ServeHTTP(w, r)
		return nil
	}

	for _, h := range c.final.headers {
		w.Header().Add(h.Name, h.Value)
	}

	return c.final.body.render(c.final.status, w, r)
}
