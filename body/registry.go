package body

import (
	"strings"

	"github.com/corvid-labs/httpcore/header"
)

// Decode looks up a decoder for contentType (the request's last
// Content-Type header occurrence) and runs it against data. A nil Map with
// a nil error means no decoder matched the media type: the body is absent
// rather than an error.
func Decode(contentType string, data []byte) (Map, error) {
	if contentType == "" {
		return nil, nil
	}
	ctHeader, err := header.New("Content-Type", contentType)
	if err != nil {
		return nil, nil
	}
	mt := header.ParseMediaType(ctHeader)
	full := strings.ToLower(mt.Type + "/" + mt.Subtype)

	switch full {
	case "application/x-www-form-urlencoded":
		return DecodeFormURLEncoded(data)
	case "multipart/form-data":
		boundary, _ := mt.Param("boundary")
		return DecodeMultipartForm(data, boundary)
	default:
		return nil, nil
	}
}
