package request

// splitRequestLineFields splits a request line on any of the separators
// RFC 7230 §3.5 tolerates between request-line fields (SP, HT, VT, CR, and
// the non-standard 0xFF some clients emit), discarding empty fragments
// produced by runs of separators.
func splitRequestLineFields(line string) []string {
	isSeparator := func(b byte) bool {
		switch b {
		case ' ', '\t', '\v', '\r', 0xFF:
			return true
		}
		return false
	}
	var fields []string
	start := -1
	for i := 0; i < len(line); i++ {
		if isSeparator(line[i]) {
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	return fields
}
