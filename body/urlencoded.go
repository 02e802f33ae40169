package body

import (
	"strings"

	"github.com/corvid-labs/httpcore/internal/codec"
)

// DecodeFormURLEncoded implements the application/x-www-form-urlencoded
// decode rule: scan bytes, split on '&', split each segment on the first
// '=', percent-decode both sides with '+'-to-space enabled, and sanitise
// keys. A segment with no '=' yields an empty-string value. An empty body
// yields an empty, non-nil Map.
func DecodeFormURLEncoded(data []byte) (Map, error) {
	out := Map{}
	s := string(data)
	if s == "" {
		return out, nil
	}
	for _, segment := range strings.Split(s, "&") {
		if segment == "" {
			continue
		}
		key := segment
		val := ""
		if i := strings.IndexByte(segment, '='); i >= 0 {
			key = segment[:i]
			val = segment[i+1:]
		}
		decodedKey, err := codec.Decode(key, true, false)
		if err != nil {
			return nil, err
		}
		decodedVal, err := codec.Decode(val, true, false)
		if err != nil {
			return nil, err
		}
		out[codec.SanitizeKey(decodedKey)] = StringValue(decodedVal)
	}
	return out, nil
}
