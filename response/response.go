// Package response implements the ResponseSerialiser component: status
// line emission, header finalisation, chunked-vs-content-length framing,
// cookie emission, optional gzip compression, and the open/headers-sent/
// closed state machine a handler's writes move through.
package response

import (
	"bytes"
	"io"

	"github.com/corvid-labs/httpcore/cookie"
	"github.com/corvid-labs/httpcore/header"
	"github.com/corvid-labs/httpcore/status"
)

type state int

const (
	stateOpen state = iota
	stateHeadersSent
	stateClosed
)

// DefaultWriteChunkSize is the network-write slice size (4 KiB-16 KiB is
// the recommended range); writes larger than this are split into
// multiple slices on the wire.
const DefaultWriteChunkSize = 8 << 10

// Options configures a Response at construction time. AcceptEncoding is
// the raw value of the request's Accept-Encoding header (or "" if absent);
// it is consulted only when compression is enabled.
type Options struct {
	ServerName         string
	DefaultContentType string
	WriteChunkSize     int
	AcceptEncoding     string
	HeadMode           bool
}

// Response is the handler-facing ResponseSerialiser. A Response is created
// by the ConnectionEngine before handler invocation and closed by it
// afterwards; the handler mutates status, headers, cookies, and writes the
// body in between.
type Response struct {
	w io.Writer

	status int
	reason string

	header  *header.Collection
	cookies *cookie.Collection

	buffering   bool
	compression bool
	encoding    string

	headMode       bool
	serverName     string
	defaultCT      string
	writeChunkSize int
	acceptEncoding string

	buf                      bytes.Buffer
	state                    state
	headersFlushedForChunked bool
}

// New returns an open Response that writes to w, defaulting to status 200,
// buffering enabled, compression disabled, and UTF-8 string encoding.
func New(w io.Writer, opts Options) *Response {
	chunkSize := opts.WriteChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultWriteChunkSize
	}
	ct := opts.DefaultContentType
	if ct == "" {
		ct = "text/html"
	}
	return &Response{
		w:              w,
		status:         200,
		reason:         status.Text(200),
		header:         header.NewCollection(),
		cookies:        cookie.NewCollection(),
		buffering:      true,
		encoding:       "utf-8",
		headMode:       opts.HeadMode,
		serverName:     opts.ServerName,
		defaultCT:      ct,
		writeChunkSize: chunkSize,
		acceptEncoding: opts.AcceptEncoding,
	}
}

func (r *Response) checkOpen() error {
	switch r.state {
	case stateClosed:
		return status.ErrResponseClosed
	case stateHeadersSent:
		return status.ErrHeadersAlreadySent
	default:
		return nil
	}
}

// Status sets the numeric status code and looks up its reason phrase.
func (r *Response) Status(code int) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	r.status = code
	r.reason = status.Text(code)
	return nil
}

// StatusCode returns the currently-set status code.
func (r *Response) StatusCode() int { return r.status }

// Header returns the response's mutable HeaderCollection while the
// response is still open.
func (r *Response) Header() *header.Collection { return r.header }

// Cookies returns the response's mutable CookieCollection while the
// response is still open.
func (r *Response) Cookies() *cookie.Collection { return r.cookies }

// SetBuffering toggles whether the body is buffered in memory (enabling
// Content-Length framing and compression) or streamed as chunked.
func (r *Response) SetBuffering(enabled bool) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	r.buffering = enabled
	return nil
}

// Buffering reports the current buffering setting.
func (r *Response) Buffering() bool { return r.buffering }

// SetCompression toggles gzip negotiation against the request's
// Accept-Encoding. Compression only applies when buffering is also
// enabled.
func (r *Response) SetCompression(enabled bool) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	r.compression = enabled
	return nil
}

// Compression reports the current compression setting.
func (r *Response) Compression() bool { return r.compression }

// SetEncoding records an encoding name for text writes. Any name is
// accepted and reported back by Encoding, but WriteString and WriteLine
// always write UTF-8 bytes; no other encoding is applied.
func (r *Response) SetEncoding(enc string) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	r.encoding = enc
	return nil
}

// Encoding returns the current string-write encoding.
func (r *Response) Encoding() string { return r.encoding }

// HeadMode reports whether this Response discards body writes, as
// required for a response to a HEAD request.
func (r *Response) HeadMode() bool { return r.headMode }

// Closed reports whether Close has been called.
func (r *Response) Closed() bool { return r.state == stateClosed }

// HeadersSent reports whether headers have already been emitted.
func (r *Response) HeadersSent() bool { return r.state != stateOpen }
