package header

import (
	"strings"

	"github.com/corvid-labs/httpcore/internal/codec"
)

// Parameterised is a primary value plus an ordered map of name=value
// parameters, produced by splitting a header's raw value at the first
// unquoted ';'. Parameter values use the same backslash-escape rules as
// QuotedList inside double quotes.
type Parameterised struct {
	Value      string
	paramNames []string
	paramVals  map[string]string
	ci         bool
}

// ParseParameterised splits h's value at the first unquoted ';' and parses
// the remainder as name=value parameters. If caseInsensitive is true,
// parameter-name lookups via Param ignore case.
func ParseParameterised(h Header, caseInsensitive bool) Parameterised {
	value, rest := splitAtUnquotedSemicolon(h.Value)
	p := Parameterised{
		Value:     strings.TrimSpace(value),
		paramVals: map[string]string{},
		ci:        caseInsensitive,
	}
	for rest != "" {
		var seg string
		seg, rest = splitAtUnquotedSemicolon(rest)
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, val := seg, ""
		if i := strings.IndexByte(seg, '='); i >= 0 {
			name, val = seg[:i], seg[i+1:]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return p
		}
		val = unquoteParamValue(strings.TrimSpace(val))
		key := name
		if caseInsensitive {
			key = strings.ToLower(name)
		}
		if _, exists := p.paramVals[key]; !exists {
			p.paramNames = append(p.paramNames, name)
		}
		p.paramVals[key] = val
	}
	return p
}

// splitAtUnquotedSemicolon splits s at the first ';' that is not inside a
// double-quoted segment, returning (before, after-semicolon).
func splitAtUnquotedSemicolon(s string) (string, string) {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if inQuotes {
				i++
			}
		case '"':
			inQuotes = !inQuotes
		case ';':
			if !inQuotes {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

// unquoteParamValue strips surrounding double quotes (if present) and
// resolves backslash escapes inside them.
func unquoteParamValue(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		items := codec.QuotedList(v, codec.QuotedListOptions{Escapes: true})
		if len(items) == 1 {
			return items[0]
		}
		if len(items) == 0 {
			return ""
		}
	}
	return v
}

// Param returns the named parameter's value and whether it was present.
func (p Parameterised) Param(name string) (string, bool) {
	key := name
	if p.ci {
		key = strings.ToLower(name)
	}
	v, ok := p.paramVals[key]
	return v, ok
}

// ParamNames returns parameter names in the order first encountered.
func (p Parameterised) ParamNames() []string {
	return append([]string(nil), p.paramNames...)
}
