package body

import (
	"bufio"
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/corvid-labs/httpcore/header"
	"github.com/corvid-labs/httpcore/internal/codec"
	"github.com/corvid-labs/httpcore/status"
)

// charsetDecoders maps the charset names the multipart decoder recognises
// to a transcoder into UTF-8. ascii/us-ascii need no transcoding since
// every ASCII byte already is a UTF-8 byte.
var charsetDecoders = map[string]*charmap.Charmap{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin-1":      charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp-1252":      charmap.Windows1252,
}

func isASCIICharset(name string) bool {
	return name == "ascii" || name == "us-ascii"
}

func isUTF8Charset(name string) bool {
	return name == "utf-8" || name == "utf8"
}

// DecodeMultipartForm implements the multipart/form-data decode protocol:
// skip to the first boundary, read each part's headers and body, and
// flatten named parts into a Map. boundary is the Content-Type boundary
// parameter value, unquoted and without its leading "--".
func DecodeMultipartForm(data []byte, boundary string) (Map, error) {
	if boundary == "" {
		return nil, status.New(status.MalformedMultipart, "multipart/form-data: missing boundary parameter")
	}
	r := bufio.NewReader(bytes.NewReader(data))

	dashBoundary := []byte("--" + boundary)
	workingBoundary := append([]byte("\r\n"), dashBoundary...)

	// Step 1: skip bytes up to and including the first --boundary marker.
	if err := skipToBoundary(r, dashBoundary); err != nil {
		return nil, status.New(status.MalformedMultipart, "multipart/form-data: opening boundary not found")
	}

	// Step 2: consume the trailing CRLF.
	if err := consumeCRLF(r); err != nil {
		return nil, status.New(status.MalformedMultipart, "multipart/form-data: malformed opening boundary line")
	}

	out := Map{}

	for {
		// Step 4: read part-headers (lines until empty), parse as HeaderCollection.
		hdrs, err := header.ParseMany(r)
		if err != nil {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: malformed part headers")
		}
		headers := header.NewCollection()
		for _, h := range hdrs {
			headers.Add(h.Name, h.Value, false)
		}

		disposition, ok := headers.Last("Content-Disposition")
		if !ok {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: part missing Content-Disposition")
		}
		dispHeader, err := header.New("Content-Disposition", disposition)
		if err != nil {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: malformed Content-Disposition")
		}
		params := header.ParseParameterised(dispHeader, true)
		name, ok := params.Param("name")
		if !ok {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: part missing name parameter")
		}

		// Read body bytes until the working boundary appears.
		body, err := readUntilBoundary(r, workingBoundary)
		if err != nil {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: unterminated part body")
		}

		value := decodePartValue(headers, body)
		out[codec.SanitizeKey(name)] = value

		// Step 7: peek two bytes for the closing "--". The working boundary
		// match just consumed "CRLF--boundary"; what follows is either "--"
		// (closing delimiter) or the CRLF that precedes the next part's
		// headers.
		closing, err := peekTwo(r)
		if err != nil {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: truncated after part")
		}
		if closing {
			break
		}
		if err := consumeCRLF(r); err != nil {
			return nil, status.New(status.MalformedMultipart, "multipart/form-data: malformed boundary line")
		}
	}

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// decodePartValue determines the part's encoding from its Content-Type,
// and either decodes to a string or keeps raw bytes.
func decodePartValue(headers *header.Collection, body []byte) Value {
	ctVal, hasCT := headers.Last("Content-Type")
	if !hasCT {
		return StringValue(string(body))
	}
	ctHeader, err := header.New("Content-Type", ctVal)
	if err != nil {
		return BytesValue(body)
	}
	mt := header.ParseMediaType(ctHeader)
	if !strings.EqualFold(mt.Type, "text") {
		return BytesValue(body)
	}
	charset, hasCharset := mt.Param("charset")
	if !hasCharset {
		return StringValue(asciiToUTF8(body))
	}
	charset = strings.ToLower(strings.TrimSpace(charset))
	switch {
	case isASCIICharset(charset):
		return StringValue(asciiToUTF8(body))
	case isUTF8Charset(charset):
		return StringValue(string(body))
	default:
		if cm, ok := charsetDecoders[charset]; ok {
			decoded, err := cm.NewDecoder().Bytes(body)
			if err == nil {
				return StringValue(string(decoded))
			}
		}
		return StringValue(asciiToUTF8(body))
	}
}

// asciiToUTF8 passes ASCII bytes through unchanged; any byte with the high
// bit set is replaced with the Unicode replacement character's ASCII
// stand-in so output remains valid UTF-8.
func asciiToUTF8(b []byte) string {
	clean := make([]byte, len(b))
	for i, c := range b {
		if c < 0x80 {
			clean[i] = c
		} else {
			clean[i] = '?'
		}
	}
	return string(clean)
}

func skipToBoundary(r *bufio.Reader, marker []byte) error {
	var window bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		window.WriteByte(b)
		if window.Len() > len(marker) {
			window.Next(1)
		}
		if bytes.Equal(window.Bytes(), marker) {
			return nil
		}
	}
}

func consumeCRLF(r *bufio.Reader) error {
	cr, err := r.ReadByte()
	if err != nil {
		return err
	}
	if cr != '\r' {
		if err := r.UnreadByte(); err != nil {
			return err
		}
	}
	lf, err := r.ReadByte()
	if err != nil {
		return err
	}
	if lf != '\n' {
		return status.New(status.MalformedMultipart, "expected CRLF")
	}
	return nil
}

// readUntilBoundary reads bytes into a buffer until marker is found,
// returning everything before the match without consuming the marker's
// trailing bytes beyond what readUntilBoundary itself consumed.
func readUntilBoundary(r *bufio.Reader, marker []byte) ([]byte, error) {
	var out bytes.Buffer
	var window bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		window.WriteByte(b)
		if window.Len() > len(marker) {
			c, _ := window.ReadByte()
			out.WriteByte(c)
		}
		if bytes.Equal(window.Bytes(), marker) {
			return out.Bytes(), nil
		}
	}
}

// peekTwo looks at the next two bytes without consuming them, so a
// non-closing boundary match leaves the reader positioned to continue.
func peekTwo(r *bufio.Reader) (bool, error) {
	peeked, err := r.Peek(2)
	if err != nil && len(peeked) == 0 {
		return false, err
	}
	return len(peeked) == 2 && peeked[0] == '-' && peeked[1] == '-', nil
}
