// Package cookie implements the Cookie data model: attributes, string
// serialisation for Set-Cookie, equality by name or by attributes, and a
// name-unique, latchable Collection.
package cookie

import (
	"strings"
	"time"

	"github.com/corvid-labs/httpcore/status"
)

// Cookie is a non-empty RFC 6265 token name, a value, and optional
// attributes.
type Cookie struct {
	Name     string
	Value    string
	Expires  time.Time
	Domain   string
	Path     string
	Secure   bool
	HttpOnly bool
}

// tokenChar reports whether b is legal in an RFC 6265/7230 cookie-name
// token: any CHAR except CTLs or separators.
func tokenChar(b byte) bool {
	if b <= 0x20 || b >= 0x7f {
		return false
	}
	switch b {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}', ' ':
		return false
	}
	return true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !tokenChar(name[i]) {
			return false
		}
	}
	return true
}

// New constructs a Cookie, validating the name against the RFC 6265 token
// alphabet.
func New(name, value string) (*Cookie, error) {
	if !validName(name) {
		return nil, status.Newf(status.MalformedHeader, "invalid cookie name %q", name)
	}
	return &Cookie{Name: name, Value: value}, nil
}

// String serialises the cookie for a Set-Cookie header, omitting absent
// attributes:
//
//	name=value; Expires=...; Domain=...; Path=...; HttpOnly; Secure
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)
	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.Expires.UTC().Format(http11Date))
	}
	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	return b.String()
}

// http11Date is the wire format for the Expires attribute, same as the
// Date response header (RFC 7231 §7.1.1.1 IMF-fixdate via time.RFC1123
// with a fixed GMT zone).
const http11Date = "Mon, 02 Jan 2006 15:04:05 GMT"

// EqualName reports whether two cookies share a name.
func (c *Cookie) EqualName(other *Cookie) bool {
	return c.Name == other.Name
}

// EqualAttributes reports whether two cookies are identical in every
// field.
func (c *Cookie) EqualAttributes(other *Cookie) bool {
	return c.Name == other.Name &&
		c.Value == other.Value &&
		c.Expires.Equal(other.Expires) &&
		c.Domain == other.Domain &&
		c.Path == other.Path &&
		c.Secure == other.Secure &&
		c.HttpOnly == other.HttpOnly
}
