package status

import "fmt"

// ErrorKind enumerates the protocol exceptions the parser and serialiser
// can raise. Kinds ending in a wire-visible status carry one via
// ProtocolError.Status; the three programming-error kinds signal misuse
// of the library rather than a malformed request and carry status 500.
type ErrorKind int

const (
	MalformedRequestLine ErrorKind = iota
	MalformedHeader
	MalformedMultipart
	MalformedEncoding
	InvalidContentLength
	BodyTooLarge
	ReadTimeout
	UnsupportedMediaType
	ResponseClosed
	HeadersAlreadySent
	ReadOnly
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedRequestLine:
		return "malformed-request-line"
	case MalformedHeader:
		return "malformed-header"
	case MalformedMultipart:
		return "malformed-multipart"
	case MalformedEncoding:
		return "malformed-encoding"
	case InvalidContentLength:
		return "invalid-content-length"
	case BodyTooLarge:
		return "body-too-large"
	case ReadTimeout:
		return "read-timeout"
	case UnsupportedMediaType:
		return "unsupported-media-type"
	case ResponseClosed:
		return "response-closed"
	case HeadersAlreadySent:
		return "headers-already-sent"
	case ReadOnly:
		return "read-only"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// wireStatus maps each ErrorKind to the status code the ConnectionEngine
// should reply with. Programming-error kinds map to 500 as a fallback,
// though callers should never let them reach the wire directly — they
// indicate a bug in this library or its embedder, not a malformed request.
var wireStatus = map[ErrorKind]int{
	MalformedRequestLine:  400,
	MalformedHeader:       400,
	MalformedMultipart:    400,
	MalformedEncoding:     400,
	InvalidContentLength:  400,
	BodyTooLarge:          413,
	ReadTimeout:           408,
	UnsupportedMediaType:  415,
	ResponseClosed:        500,
	HeadersAlreadySent:    500,
	ReadOnly:              500,
	Internal:              500,
}

// ProtocolError is the error type raised by the parser and serialiser for
// every protocol-level failure. It carries the HTTP status the
// ConnectionEngine should translate it to when reported on the wire.
type ProtocolError struct {
	Kind   ErrorKind
	Status int
	Msg    string
}

func (e *ProtocolError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New constructs a ProtocolError of the given kind with the kind's default
// wire status.
func New(kind ErrorKind, msg string) *ProtocolError {
	return &ProtocolError{Kind: kind, Status: wireStatus[kind], Msg: msg}
}

// Newf is like New with fmt.Sprintf-style formatting.
func Newf(kind ErrorKind, format string, args ...any) *ProtocolError {
	return New(kind, fmt.Sprintf(format, args...))
}

// IsKind reports whether err is a *ProtocolError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	pe, ok := err.(*ProtocolError)
	return ok && pe.Kind == kind
}

var (
	// ErrReadOnly is returned by HeaderCollection/CookieCollection
	// mutators after the collection has been latched.
	ErrReadOnly = New(ReadOnly, "collection is latched read-only")
	// ErrHeadersAlreadySent is returned by Response mutators once the
	// status line/headers have been emitted.
	ErrHeadersAlreadySent = New(HeadersAlreadySent, "headers already sent")
	// ErrResponseClosed is returned by any Response operation after
	// Close has been called.
	ErrResponseClosed = New(ResponseClosed, "response is closed")
)
