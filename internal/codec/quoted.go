package codec

import (
	"fmt"
	"strconv"
)

// QuotedListOptions configures QuotedList. The zero value uses '"' as the
// quote character and ',' as the delimiter, with C-escape recognition
// disabled.
type QuotedListOptions struct {
	Quote     byte
	Delimiter byte
	Escapes   bool
}

func (o QuotedListOptions) normalize() QuotedListOptions {
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	return o
}

// QuotedList splits src into items separated by a delimiter. Outside a
// quoted segment, unquoted whitespace (space, tab) is discarded and a bare
// delimiter ends the item. Inside a quoted segment, a backslash introduces
// an escape when opts.Escapes is set (otherwise it is an ordinary byte),
// and every other byte except the closing quote — including whitespace
// and the delimiter — is literal. A trailing item with no terminating delimiter is yielded
// if non-empty.
func QuotedList(src string, opts QuotedListOptions) []string {
	opts = opts.normalize()
	var items []string
	var cur []byte
	inQuotes := false
	hasContent := false

	flush := func() {
		if hasContent || len(cur) > 0 {
			items = append(items, string(cur))
		}
		cur = cur[:0]
		hasContent = false
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case inQuotes:
			switch {
			case opts.Escapes && c == '\\' && i+1 < len(src):
				decoded, n := decodeEscape(src[i+1:])
				cur = append(cur, decoded...)
				i += 1 + n
				hasContent = true
				continue
			case c == opts.Quote:
				inQuotes = false
			default:
				cur = append(cur, c)
				hasContent = true
			}
		case c == opts.Quote:
			inQuotes = true
			hasContent = true
		case c == opts.Delimiter:
			flush()
		case c == ' ' || c == '\t':
			// discarded outside quotes
		default:
			cur = append(cur, c)
			hasContent = true
		}
		i++
	}
	flush()
	return items
}

// decodeEscape interprets the C escape codes supported by spec: \n \r \0
// \b \t \v \a \f, \xHH, and \ooo (three-digit octal). It returns the
// decoded bytes and the number of source bytes consumed (not counting the
// leading backslash).
func decodeEscape(s string) ([]byte, int) {
	if len(s) == 0 {
		return []byte{'\\'}, 0
	}
	switch s[0] {
	case 'n':
		return []byte{'\n'}, 1
	case 'r':
		return []byte{'\r'}, 1
	case '0':
		// Could be the start of octal \ooo; handled below since '0' is a
		// valid first octal digit. \0 alone (no following octal digits)
		// is the NUL escape.
		if len(s) >= 3 && isOctal(s[1]) && isOctal(s[2]) {
			v, err := strconv.ParseUint(s[0:3], 8, 8)
			if err == nil {
				return []byte{byte(v)}, 3
			}
		}
		return []byte{0}, 1
	case 'b':
		return []byte{'\b'}, 1
	case 't':
		return []byte{'\t'}, 1
	case 'v':
		return []byte{'\v'}, 1
	case 'a':
		return []byte{'\a'}, 1
	case 'f':
		return []byte{'\f'}, 1
	case 'x':
		if len(s) >= 3 && isHex(s[1]) && isHex(s[2]) {
			v, err := strconv.ParseUint(s[1:3], 16, 8)
			if err == nil {
				return []byte{byte(v)}, 3
			}
		}
		return []byte(s[:1]), 1
	default:
		if isOctal(s[0]) && len(s) >= 3 && isOctal(s[1]) && isOctal(s[2]) {
			v, err := strconv.ParseUint(s[0:3], 8, 8)
			if err == nil {
				return []byte{byte(v)}, 3
			}
		}
		return []byte{s[0]}, 1
	}
}

func isOctal(b byte) bool { return b >= '0' && b <= '7' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// KVOptions configures KVList. The zero value uses ';' as the pair
// delimiter and '=' as the key/value separator, with no character
// whitelists.
type KVOptions struct {
	PairDelimiter byte
	Separator     byte
	KeyChars      func(byte) bool // nil means "any"
	ValueChars    func(byte) bool // nil means "any"
}

func (o KVOptions) normalize() KVOptions {
	if o.PairDelimiter == 0 {
		o.PairDelimiter = ';'
	}
	if o.Separator == 0 {
		o.Separator = '='
	}
	return o
}

// KVEntry is one key-value pair parsed by KVList. HasValue is false for a
// bare key with no separator (e.g. a cookie flag like "HttpOnly").
type KVEntry struct {
	Key      string
	Value    string
	HasValue bool
}

// KVList parses src into an ordered list of key-value pairs. Whitespace is
// skipped between pairs. A key with no separator yields a null value
// (HasValue == false). A zero-length key is a format error.
func KVList(src string, opts KVOptions) ([]KVEntry, error) {
	opts = opts.normalize()
	var out []KVEntry
	i := 0
	n := len(src)
	for i < n {
		for i < n && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		keyStart := i
		for i < n && src[i] != opts.Separator && src[i] != opts.PairDelimiter {
			if opts.KeyChars != nil && !opts.KeyChars(src[i]) {
				break
			}
			i++
		}
		key := src[keyStart:i]
		if len(key) == 0 {
			return nil, fmt.Errorf("codec: zero-length key at offset %d", i)
		}
		entry := KVEntry{Key: key}
		// Skip any trailing bytes rejected by KeyChars up to the next
		// separator or pair delimiter.
		for i < n && src[i] != opts.Separator && src[i] != opts.PairDelimiter {
			i++
		}
		if i < n && src[i] == opts.Separator {
			i++
			valStart := i
			for i < n && src[i] != opts.PairDelimiter {
				if opts.ValueChars != nil && !opts.ValueChars(src[i]) {
					break
				}
				i++
			}
			entry.Value = src[valStart:i]
			entry.HasValue = true
			for i < n && src[i] != opts.PairDelimiter {
				i++
			}
		}
		out = append(out, entry)
		if i < n && src[i] == opts.PairDelimiter {
			i++
		}
	}
	return out, nil
}
