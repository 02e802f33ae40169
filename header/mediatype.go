package header

import "strings"

// MediaType is a type/subtype pair with an ordered parameter map, e.g.
// "text/html; charset=utf-8".
type MediaType struct {
	Type       string
	Subtype    string
	parameters Parameterised
}

// ParseMediaType parses h's value as a media type.
func ParseMediaType(h Header) MediaType {
	p := ParseParameterised(h, true)
	typ, subtype := "*", "*"
	if idx := strings.IndexByte(p.Value, '/'); idx >= 0 {
		typ = strings.TrimSpace(p.Value[:idx])
		subtype = strings.TrimSpace(p.Value[idx+1:])
	} else if p.Value != "" {
		typ = strings.TrimSpace(p.Value)
	}
	return MediaType{Type: typ, Subtype: subtype, parameters: p}
}

// Param returns a parameter by name (case-insensitive).
func (m MediaType) Param(name string) (string, bool) {
	return m.parameters.Param(name)
}

// String renders "type/subtype".
func (m MediaType) String() string {
	return m.Type + "/" + m.Subtype
}

// Equivalent reports whether m and other denote the same media type: both
// the type and subtype match case-insensitively, or either side uses a
// "*" wildcard for that part.
func (m MediaType) Equivalent(other MediaType) bool {
	return partMatches(m.Type, other.Type) && partMatches(m.Subtype, other.Subtype)
}

func partMatches(a, b string) bool {
	if a == "*" || b == "*" {
		return true
	}
	return strings.EqualFold(a, b)
}
