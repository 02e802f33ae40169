package cookie

import (
	"strings"

	"github.com/corvid-labs/httpcore/internal/codec"
)

// ParseHeader parses a single Cookie header's value (semicolon-separated
// name=value pairs) via the unquoted key-value parser and percent-decodes
// each value. It returns a plain map, the shape every Cookie header gets
// flattened into.
func ParseHeader(value string) (map[string]string, error) {
	out := map[string]string{}
	entries, err := codec.KVList(value, codec.KVOptions{PairDelimiter: ';', Separator: '='})
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Key)
		val := ""
		if e.HasValue {
			decoded, err := codec.Decode(strings.TrimSpace(e.Value), false, false)
			if err != nil {
				continue
			}
			val = decoded
		}
		out[name] = val
	}
	return out, nil
}
