package codec

// SanitizeKey prevents wire-derived map keys (form fields, cookie names,
// multipart part names) from surfacing as arbitrary accessor names: any
// leading decimal digits are trimmed, then every byte outside
// [A-Za-z0-9_] is dropped.
func SanitizeKey(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	s = s[i:]
	out := make([]byte, 0, len(s))
	for j := 0; j < len(s); j++ {
		c := s[j]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			out = append(out, c)
		}
	}
	return string(out)
}
