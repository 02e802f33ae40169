// Package body implements the body decoders: for
// application/x-www-form-urlencoded and multipart/form-data, flattening
// a request body into a name -> Value map, plus the registry the request
// parser consults by media type.
package body

// Value is a sum type over the two forms a decoded body field can take:
// a decoded string, or raw bytes (for a multipart part whose Content-Type
// is not text/*).
type Value struct {
	str     string
	bytes   []byte
	isBytes bool
}

// StringValue wraps a decoded string.
func StringValue(s string) Value { return Value{str: s} }

// BytesValue wraps raw bytes.
func BytesValue(b []byte) Value { return Value{bytes: b, isBytes: true} }

// AsString returns the value as a string and true, or ("", false) if this
// Value holds raw bytes instead.
func (v Value) AsString() (string, bool) {
	if v.isBytes {
		return "", false
	}
	return v.str, true
}

// AsBytes returns the value as bytes and true, or (nil, false) if this
// Value holds a string instead.
func (v Value) AsBytes() ([]byte, bool) {
	if !v.isBytes {
		return nil, false
	}
	return v.bytes, true
}

// IsBytes reports whether this Value holds raw bytes rather than a string.
func (v Value) IsBytes() bool {
	return v.isBytes
}

// Map is the decoded body's flat name -> Value map. A nil Map marks a
// body that no decoder matched.
type Map map[string]Value
