package request

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/corvid-labs/httpcore/body"
	"github.com/corvid-labs/httpcore/cookie"
	"github.com/corvid-labs/httpcore/header"
	"github.com/corvid-labs/httpcore/internal/codec"
	"github.com/corvid-labs/httpcore/status"
)

const (
	// DefaultMaxBodyBytes is the body-size ceiling enforced absent any
	// override: 32 MiB.
	DefaultMaxBodyBytes = 32 << 20
	// DefaultReadTimeout is the per-connection deadline applied while
	// reading the body.
	DefaultReadTimeout = 60 * time.Second
)

// Parser reads a single request off a byte stream. A Parser is safe for
// concurrent use; it holds no per-request state.
type Parser struct {
	MaxBodyBytes int64
	ReadTimeout  time.Duration
}

// NewParser returns a Parser, substituting the package defaults for any
// zero-value field, mirroring the "fill empty fields with defaults"
// shape the embedding Config constructor uses.
func NewParser(maxBodyBytes int64, readTimeout time.Duration) *Parser {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &Parser{MaxBodyBytes: maxBodyBytes, ReadTimeout: readTimeout}
}

// Parse reads one request from conn, applying the read timeout to the body
// read (step 6). The request line and headers are read with no deadline;
// the ConnectionEngine is responsible for any accept-level idle timeout.
func (p *Parser) Parse(conn net.Conn) (*Request, error) {
	r := bufio.NewReader(conn)
	req, err := p.parse(r, conn)
	if req != nil {
		req.RemoteAddr = conn.RemoteAddr().String()
	}
	return req, err
}

// ParseBytes parses a request out of an in-memory buffer, used by tests
// and by any embedder that has already buffered a full message.
func (p *Parser) ParseBytes(data []byte) (*Request, error) {
	r := bufio.NewReader(bytes.NewReader(data))
	return p.parse(r, nil)
}

func (p *Parser) parse(r *bufio.Reader, conn net.Conn) (*Request, error) {
	// Step 1: drain leading blank lines.
	if err := drainBlankLines(r); err != nil {
		return nil, status.New(status.MalformedRequestLine, "unable to read request line")
	}

	// Step 2: read and tokenise the request line.
	rawLine, err := r.ReadString('\n')
	if err != nil && rawLine == "" {
		return nil, status.New(status.MalformedRequestLine, "connection closed before request line")
	}
	fields := splitRequestLineFields(strings.TrimRight(rawLine, "\n"))
	if len(fields) != 3 {
		return nil, status.New(status.MalformedRequestLine, "expected method, target, and version")
	}

	req := &Request{ID: uuid.NewString()}

	// Step 3: method, request-target, version.
	req.Method = strings.ToUpper(fields[0])
	target := fields[1]
	req.Version = fields[2]

	rawPath := target
	rawQuery := ""
	if i := strings.IndexByte(target, '?'); i >= 0 {
		rawPath = target[:i]
		rawQuery = target[i+1:]
	}
	decodedPath, err := codec.Decode(rawPath, true, false)
	if err != nil {
		return nil, status.New(status.MalformedRequestLine, "malformed percent-encoding in path")
	}
	req.Path = normalizePath(decodedPath)

	// Step 4: query string.
	if rawQuery != "" {
		q, err := body.DecodeFormURLEncoded([]byte(rawQuery))
		if err == nil {
			req.Query = q
		}
	}

	// Step 5: header block.
	hdrs, err := header.ParseMany(r)
	if err != nil {
		return req, status.New(status.MalformedHeader, "malformed header block")
	}
	headers := header.NewCollection()
	for _, h := range hdrs {
		if addErr := headers.Add(h.Name, h.Value, false); addErr != nil {
			return req, status.New(status.MalformedHeader, "duplicate latch violation while building headers")
		}
	}
	headers.Latch()
	req.Header = headers

	// Step 6: body ingestion.
	raw, err := p.readBody(r, conn, headers)
	if err != nil {
		return req, err
	}
	req.Raw = raw

	// Step 7: body decoding.
	if len(raw) > 0 {
		decoded, err := body.Decode(req.ContentType(), raw)
		if err != nil {
			return req, err
		}
		req.Body = decoded
	}

	// Step 8: cookies.
	req.Cookies = parseCookies(headers)

	return req, nil
}

// drainBlankLines consumes any number of leading empty lines, tolerating
// both CRLF and bare-LF terminated blanks.
func drainBlankLines(r *bufio.Reader) error {
	for {
		peeked, err := r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if peeked[0] != '\r' && peeked[0] != '\n' {
			return nil
		}
		if _, err := r.ReadString('\n'); err != nil {
			return nil
		}
	}
}

// normalizePath strips a single trailing '/' unless the path is the root.
func normalizePath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

func (p *Parser) readBody(r *bufio.Reader, conn net.Conn, headers *header.Collection) ([]byte, error) {
	clValue, ok := headers.Last("Content-Length")
	if !ok {
		return nil, nil
	}
	clValue = strings.TrimSpace(clValue)
	n, err := strconv.ParseInt(clValue, 10, 64)
	if err != nil || n < 0 {
		return nil, status.New(status.InvalidContentLength, "Content-Length is not a non-negative integer")
	}
	if n > p.MaxBodyBytes {
		return nil, status.Newf(status.BodyTooLarge, "Content-Length %d exceeds ceiling %d", n, p.MaxBodyBytes)
	}
	if n == 0 {
		return nil, nil
	}

	if conn != nil {
		if err := conn.SetReadDeadline(time.Now().Add(p.ReadTimeout)); err != nil {
			return nil, status.New(status.Internal, "unable to set read deadline")
		}
		defer conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if isTimeout(err) {
			return nil, status.New(status.ReadTimeout, "timed out reading request body")
		}
		return nil, status.New(status.ReadTimeout, "connection closed before body was fully read")
	}
	return buf, nil
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	te, ok := err.(timeouter)
	return ok && te.Timeout()
}

// parseCookies gathers every Cookie header occurrence, parses each via the
// unquoted key-value parser, and flattens the results into one sanitised
// map.
func parseCookies(headers *header.Collection) map[string]string {
	out := map[string]string{}
	for _, raw := range headers.Values("Cookie") {
		parsed, err := cookie.ParseHeader(raw)
		if err != nil {
			continue
		}
		for k, v := range parsed {
			out[codec.SanitizeKey(k)] = v
		}
	}
	return out
}
