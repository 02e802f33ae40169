package response

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/corvid-labs/httpcore/cookie"
	"github.com/corvid-labs/httpcore/header"
	"github.com/corvid-labs/httpcore/status"
)

// http11Date is the HTTP-date layout RFC 7231 §7.1.1.1 requires for Date.
const http11Date = "Mon, 02 Jan 2006 15:04:05 GMT"

// serverVersion is appended to the default Server identifier.
const serverVersion = "1.0"

// Write appends bytes to the response, sending headers (in chunked mode)
// on first call.
func (r *Response) Write(b []byte) (int, error) {
	if r.state == stateClosed {
		return 0, status.ErrResponseClosed
	}
	if r.headMode {
		r.state = stateHeadersSent
		return len(b), nil
	}
	if r.buffering {
		r.state = stateHeadersSent
		return r.buf.Write(b)
	}
	r.state = stateHeadersSent
	if err := r.writeChunk(b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// WriteString writes s. UTF-8 is the only supported encoding, so this is a
// byte-for-byte write of s's UTF-8 representation.
func (r *Response) WriteString(s string) (int, error) {
	return r.Write([]byte(s))
}

// WriteLine concatenates parts and writes them followed by a newline.
func (r *Response) WriteLine(parts ...string) (int, error) {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString(p)
	}
	buf.WriteByte('\n')
	return r.Write(buf.Bytes())
}

// WriteJSON marshals v and writes it with Content-Type: application/json.
func (r *Response) WriteJSON(v any) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	data, err := jsonMarshal(v)
	if err != nil {
		return err
	}
	r.header.Add("Content-Type", "application/json", true)
	_, err = r.Write(data)
	return err
}

// finalizeAndFlush runs at Close for a buffering response: it applies
// compression, default headers, and cookie emission to the complete
// buffered body, then writes status line, headers, and body to the wire.
func (r *Response) finalizeAndFlush() error {
	body := r.buf.Bytes()

	if r.compression && !r.headMode && acceptsGzip(r.acceptEncoding) {
		compressed, err := gzipCompress(body)
		if err == nil {
			body = compressed
			r.header.Add("Content-Encoding", "gzip", true)
		}
	}

	r.applyDefaultHeaders(len(body))
	r.emitCookies()
	r.header.Latch()

	if err := r.writeSlices(r.statusLine()); err != nil {
		return err
	}
	if err := r.writeSlices([]byte(r.header.String())); err != nil {
		return err
	}
	if err := r.writeSlices([]byte("\r\n")); err != nil {
		return err
	}
	if r.headMode || len(body) == 0 {
		return nil
	}
	return r.writeSlices(body)
}

// applyDefaultHeaders fills in the default-header rules: Date/Server
// always overwritten, Content-Type only if absent, and the
// buffered-vs-chunked framing decision.
func (r *Response) applyDefaultHeaders(bodyLen int) {
	r.header.Add("Date", time.Now().UTC().Format(http11Date), true)
	serverName := r.serverName
	if serverName == "" {
		serverName = "httpcore"
	}
	r.header.Add("Server", serverName+"/"+serverVersion, true)
	if !r.header.Contains("Content-Type") {
		r.header.Add("Content-Type", r.defaultCT, false)
	}

	if r.buffering {
		r.header.Add("Content-Length", strconv.Itoa(bodyLen), true)
		r.header.Remove("Transfer-Encoding")
	} else {
		r.header.Add("Transfer-Encoding", "chunked", true)
		r.header.Remove("Content-Length")
	}
}

// emitCookies latches the cookie collection and appends one Set-Cookie
// header per cookie, never overwriting an existing Set-Cookie entry.
func (r *Response) emitCookies() {
	r.cookies.Each(func(c *cookie.Cookie) {
		r.header.Add("Set-Cookie", c.String(), false)
	})
	r.cookies.Latch()
}

func (r *Response) statusLine() []byte {
	return []byte(fmt.Sprintf("HTTP/1.1 %d %s\r\n", r.status, r.reason))
}

// writeSlices writes data to the underlying stream in bounded slices
// (4-16 KiB is the recommended range).
func (r *Response) writeSlices(data []byte) error {
	for len(data) > 0 {
		n := r.writeChunkSize
		if n > len(data) {
			n = len(data)
		}
		if _, err := r.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// sendChunkedHead emits the status line and headers for a chunked response
// exactly once, the first time a write or close occurs.
func (r *Response) sendChunkedHead() error {
	if r.headersFlushedForChunked {
		return nil
	}
	r.applyDefaultHeaders(0)
	r.emitCookies()
	r.header.Latch()
	if err := r.writeSlices(r.statusLine()); err != nil {
		return err
	}
	if err := r.writeSlices([]byte(r.header.String())); err != nil {
		return err
	}
	if err := r.writeSlices([]byte("\r\n")); err != nil {
		return err
	}
	r.headersFlushedForChunked = true
	return nil
}

// writeChunk emits a single HTTP chunked-transfer chunk: a hex length
// line, the bytes, and a trailing CRLF.
func (r *Response) writeChunk(b []byte) error {
	if err := r.sendChunkedHead(); err != nil {
		return err
	}
	if r.headMode || len(b) == 0 {
		return nil
	}
	frame := fmt.Sprintf("%x\r\n", len(b))
	if err := r.writeSlices([]byte(frame)); err != nil {
		return err
	}
	if err := r.writeSlices(b); err != nil {
		return err
	}
	return r.writeSlices([]byte("\r\n"))
}

// sendTerminatingChunk writes the zero-length chunk that ends a chunked
// response body.
func (r *Response) sendTerminatingChunk() error {
	if err := r.sendChunkedHead(); err != nil {
		return err
	}
	if r.headMode {
		return nil
	}
	return r.writeSlices([]byte("0\r\n\r\n"))
}

// Close emits headers if not yet sent, flushes any buffered body (or the
// terminating zero-length chunk in chunked mode), and moves the response
// to the closed state. Close is idempotent.
func (r *Response) Close() error {
	if r.state == stateClosed {
		return nil
	}
	var err error
	if r.buffering {
		err = r.finalizeAndFlush()
	} else {
		err = r.sendTerminatingChunk()
	}
	r.state = stateClosed
	return err
}

func acceptsGzip(acceptEncoding string) bool {
	if acceptEncoding == "" {
		return false
	}
	h, err := header.New("Accept-Encoding", acceptEncoding)
	if err != nil {
		return false
	}
	ordered, err := header.ParseOrderedCsv(h, true)
	if err != nil {
		return false
	}
	for _, item := range ordered.Items {
		if item == "gzip" || item == "*" {
			return true
		}
	}
	return false
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ io.Writer = (*Response)(nil)
