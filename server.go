// Package httpcore is the embeddable HTTP/1.1 origin server library: it
// accepts inbound TCP connections, parses requests, invokes a
// user-supplied Handler, and serialises a conformant response. Routing,
// TLS termination, and the accept loop's worker-pool policy are left to
// the embedder; this package owns only the protocol engine and the
// per-connection lifecycle tying its pieces together.
package httpcore

import (
	"fmt"
	"net"

	"github.com/corvid-labs/httpcore/request"
	"github.com/corvid-labs/httpcore/response"
	"github.com/corvid-labs/httpcore/status"
)

// Server wires a Config and a Handler to a TCP listener.
type Server struct {
	cfg     Config
	handler Handler
	parser  *request.Parser

	errorHandler ErrorHandler
}

// NewServer returns a Server ready to ListenAndServe. A nil cfg takes the
// all-defaults Config.
func NewServer(cfg *Config, handler Handler) *Server {
	c := NewConfig(cfg)
	return &Server{
		cfg:          c,
		handler:      handler,
		parser:       request.NewParser(c.MaxBodyBytes, c.ReadTimeout),
		errorHandler: defaultErrorHandler,
	}
}

// SetErrorHandler overrides the handler invoked when ServeConn raises a
// protocol exception or any other error, in place of the default
// plain-text responder.
func (s *Server) SetErrorHandler(h ErrorHandler) {
	if h != nil {
		s.errorHandler = h
	}
}

// ListenAndServe opens a listener on s.cfg.Network/Address and serves
// connections sequentially per connection (one goroutine per connection,
// no pipelining within a connection), mirroring message/server.go's
// accept loop.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen(s.cfg.Network, s.cfg.Address)
	if err != nil {
		return err
	}
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			s.cfg.Log.Fatalf("accept: %v", err)
			return err
		}
		go s.serveConnection(conn)
	}
}

// ListenAndServe is a package-level convenience constructing a default
// Server, mirroring message/server.go's free-function entry point.
func ListenAndServe(address string, handler Handler) error {
	cfg := NewConfig(&Config{Address: address})
	return NewServer(&cfg, handler).ListenAndServe()
}

// serveConnection implements the per-connection lifecycle: parse one
// request, build a response, invoke the handler, close the response, then
// close the connection.
func (s *Server) serveConnection(conn net.Conn) {
	defer conn.Close()

	req, err := s.parser.Parse(conn)
	if err != nil && req == nil {
		// Steps 1-3 (request line) never produced a Request to hand an
		// ErrorHandler, so reply with a bare status and close.
		s.replyToUnparseableRequest(conn, err)
		return
	}

	resp := response.New(conn, response.Options{
		ServerName:         s.cfg.ServerName,
		DefaultContentType: s.cfg.DefaultContentType,
		WriteChunkSize:     s.cfg.WriteChunkSize,
		AcceptEncoding:     headerValue(req, "Accept-Encoding"),
		HeadMode:           req.Method == "HEAD",
	})

	if err != nil {
		// A header or body-ingestion failure still produced a partial
		// Request (method, path, query at least), so the error-handler
		// capability gets to observe it instead of a bare status reply.
		s.errorHandler(resp, req, err)
	} else {
		s.invokeHandler(resp, req)
	}

	resp.Close()
	s.cfg.Log.Status(req, resp.StatusCode())
}

// invokeHandler runs the handler, translating a protocol exception or any
// other panic/error into an error response instead of letting it escape.
func (s *Server) invokeHandler(resp *response.Response, req *request.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			s.errorHandler(resp, req, err)
		}
	}()
	s.handler.ServeConn(resp, req)
}

// defaultErrorHandler writes status + reason + exception text as
// text/plain, the default before any ErrorHandler override.
func defaultErrorHandler(resp *response.Response, req *request.Request, err error) {
	code := 500
	if pe, ok := err.(*status.ProtocolError); ok {
		code = pe.Status
	}
	resp.Status(code)
	resp.Header().Add("Content-Type", "text/plain", true)
	resp.WriteString(fmt.Sprintf("%d %s\n\n%s\n", code, statusReason(code), err.Error()))
}

func statusReason(code int) string {
	return status.Text(code)
}

// replyToUnparseableRequest handles a malformed-request-line failure:
// reply 400 with a generic body, then close.
func (s *Server) replyToUnparseableRequest(conn net.Conn, err error) {
	resp := response.New(conn, response.Options{
		ServerName:         s.cfg.ServerName,
		DefaultContentType: s.cfg.DefaultContentType,
		WriteChunkSize:     s.cfg.WriteChunkSize,
	})
	code := 400
	if pe, ok := err.(*status.ProtocolError); ok {
		code = pe.Status
	}
	resp.Status(code)
	resp.Header().Add("Content-Type", "text/plain", true)
	resp.WriteString(fmt.Sprintf("%d %s\n", code, statusReason(code)))
	resp.Close()
}

func headerValue(req *request.Request, name string) string {
	if req == nil || req.Header == nil {
		return ""
	}
	v, _ := req.Header.Last(name)
	return v
}
