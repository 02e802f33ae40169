// Package request implements the request parser: reading a request line,
// header block, and conditional body off a connection (or a byte slice
// for tests) and populating a Request object.
package request

import (
	"github.com/corvid-labs/httpcore/body"
	"github.com/corvid-labs/httpcore/header"
)

// Request is the parsed, read-only view of an inbound HTTP message handed
// to a handler. Header is latched once the header block has parsed; a
// partial Request returned alongside a header-block error has a nil
// Header. Query and Body are nil when the corresponding data was absent
// (no query string, an empty body, or no decoder matched the body's media
// type).
type Request struct {
	ID      string
	Method  string
	Path    string
	Version string
	Header  *header.Collection
	Query   body.Map
	Body    body.Map
	Raw     []byte
	Cookies map[string]string

	RemoteAddr string
}

// ContentType returns the last occurrence of the Content-Type header, or
// "" if absent. Body decoding consults this last-occurrence-wins value.
func (r *Request) ContentType() string {
	v, _ := r.Header.Last("Content-Type")
	return v
}

// HeaderValue returns the last occurrence of a header by name, a
// convenience matching how the body decoder and connection engine consult
// single-valued headers.
func (r *Request) HeaderValue(name string) (string, bool) {
	return r.Header.Last(name)
}
