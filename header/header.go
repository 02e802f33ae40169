// Package header implements the structured header model: a single Header
// pair, the insertion-ordered latchable Collection that holds them, and
// the parameterised/CSV/media-type views built on top.
package header

import (
	"bufio"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/corvid-labs/httpcore/status"
)

// Header is a single (field-name, value) pair. Construction trims ASCII
// space and horizontal tab from both ends; values containing internal
// CR/LF are rejected, since a Header must stay free of embedded line
// breaks.
type Header struct {
	Name  string
	Value string
}

func trimOWS(s string) string {
	return strings.Trim(s, " \t")
}

// New constructs a Header, trimming OWS and validating both the field
// name and the value. Field-name comparison downstream is always
// case-insensitive; New does not itself canonicalise case.
func New(name, value string) (Header, error) {
	name = trimOWS(name)
	value = trimOWS(value)
	if name == "" {
		return Header{}, status.New(status.MalformedHeader, "empty field name")
	}
	if strings.ContainsAny(name, ":\r\n") || !httpguts.ValidHeaderFieldName(name) {
		return Header{}, status.Newf(status.MalformedHeader, "invalid field name %q", name)
	}
	if value == "" {
		return Header{}, status.Newf(status.MalformedHeader, "empty value for field %q", name)
	}
	if strings.ContainsAny(value, "\r\n") {
		return Header{}, status.Newf(status.MalformedHeader, "value for %q contains CR/LF", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return Header{}, status.Newf(status.MalformedHeader, "invalid value for field %q", name)
	}
	return Header{Name: name, Value: value}, nil
}

// EqualFold reports whether a and b are the same ASCII-case-insensitive
// field name.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Parse parses a single raw header line (e.g. "Content-Type: text/html"),
// stripping a trailing CRLF/LF and rejecting whitespace immediately before
// the colon per RFC 7230 §3.2.4 (a request smuggling vector).
func Parse(line string) (Header, error) {
	line = strings.TrimRight(line, "\r\n")
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return Header{}, status.Newf(status.MalformedHeader, "missing colon in %q", line)
	}
	name := line[:idx]
	if len(name) > 0 && (name[len(name)-1] == ' ' || name[len(name)-1] == '\t') {
		return Header{}, status.Newf(status.MalformedHeader, "whitespace before colon in %q", line)
	}
	value := line[idx+1:]
	return New(name, value)
}

// ParseMany reads lines from r until an empty line, merging RFC
// 7230-deprecated continuation lines (lines beginning with SP or HT) into
// their predecessor with a single separating space, then parses each
// merged line into a Header.
func ParseMany(r *bufio.Reader) ([]Header, error) {
	var rawLines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		if len(trimmed) > 0 && (trimmed[0] == ' ' || trimmed[0] == '\t') && len(rawLines) > 0 {
			rawLines[len(rawLines)-1] += " " + strings.TrimLeft(trimmed, " \t")
			continue
		}
		rawLines = append(rawLines, trimmed)
		if err != nil {
			break
		}
	}
	out := make([]Header, 0, len(rawLines))
	for _, line := range rawLines {
		h, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
