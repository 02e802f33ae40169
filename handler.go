package httpcore

import (
	"github.com/corvid-labs/httpcore/request"
	"github.com/corvid-labs/httpcore/response"
)

// Handler responds to a parsed request by mutating and writing to resp.
// Returning signals the request is finished; resp must not be used after
// ServeConn returns.
type Handler interface {
	ServeConn(resp *response.Response, req *request.Request)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(resp *response.Response, req *request.Request)

// ServeConn calls f(resp, req).
func (f HandlerFunc) ServeConn(resp *response.Response, req *request.Request) {
	f(resp, req)
}

// ErrorHandler is invoked by the ConnectionEngine when the handler raises
// a protocol exception or any other error, in place of the default
// plain-text error responder.
type ErrorHandler func(resp *response.Response, req *request.Request, err error)
