package response

import (
	"bytes"
	"strings"
	"testing"
)

func TestScenarioS4ChunkedFraming(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{ServerName: "httpcore"})
	r.SetBuffering(false)
	r.WriteString("hi")
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	wire := buf.String()
	if !strings.Contains(wire, "HTTP/1.1 200 OK\r\n") {
		t.Errorf("missing status line: %q", wire)
	}
	if !strings.Contains(wire, "Transfer-Encoding: chunked\r\n") {
		t.Errorf("missing chunked header: %q", wire)
	}
	if !strings.HasSuffix(wire, "2\r\nhi\r\n0\r\n\r\n") {
		t.Errorf("chunk framing mismatch: %q", wire)
	}
}

func TestScenarioS5BufferedContentLength(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.WriteString("hi")
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	wire := buf.String()
	if !strings.Contains(wire, "Content-Length: 2\r\n") {
		t.Errorf("missing Content-Length: %q", wire)
	}
	if !strings.HasSuffix(wire, "\r\n\r\nhi") {
		t.Errorf("body mismatch: %q", wire)
	}
	if strings.Contains(wire, "Transfer-Encoding") {
		t.Errorf("unexpected Transfer-Encoding in buffered mode: %q", wire)
	}
}

func TestScenarioS6HeadModeDiscardsBody(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{HeadMode: true})
	r.WriteString("ignored")
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	wire := buf.String()
	if strings.Contains(wire, "ignored") {
		t.Errorf("HEAD response must not include body bytes: %q", wire)
	}
	if !strings.HasPrefix(wire, "HTTP/1.1 200 OK\r\n") {
		t.Errorf("expected status line, got %q", wire)
	}
}

func TestChunkedConcatenationMatchesWrittenBytes(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.SetBuffering(false)
	r.WriteString("abc")
	r.WriteString("def")
	r.Close()
	wire := buf.String()
	idx := strings.Index(wire, "\r\n\r\n")
	body := wire[idx+4:]
	if !strings.Contains(body, "3\r\nabc\r\n3\r\ndef\r\n0\r\n\r\n") {
		t.Errorf("chunk stream malformed: %q", body)
	}
}

func TestContentLengthMatchesWireBodyLength(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.WriteString("hello world")
	r.Close()
	wire := buf.String()
	if !strings.Contains(wire, "Content-Length: 11\r\n") {
		t.Errorf("wrong content-length: %q", wire)
	}
	if !strings.HasSuffix(wire, "hello world") {
		t.Errorf("body not on wire: %q", wire)
	}
}

func TestLatchBlocksMutationAfterFirstWrite(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.WriteString("x")
	if err := r.Status(404); err == nil {
		t.Error("expected error mutating status after headers sent")
	}
	if err := r.SetBuffering(false); err == nil {
		t.Error("expected error mutating buffering after headers sent")
	}
}

func TestOperationAfterCloseFails(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.WriteString("x")
	r.Close()
	if err := r.Status(200); err == nil {
		t.Error("expected error mutating a closed response")
	}
	if _, err := r.Write([]byte("y")); err == nil {
		t.Error("expected error writing to a closed response")
	}
}

func TestDefaultHeadersContentTypeOnlyIfAbsent(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{DefaultContentType: "text/html"})
	r.Header().Add("Content-Type", "application/json", true)
	r.WriteString("{}")
	r.Close()
	wire := buf.String()
	if !strings.Contains(wire, "Content-Type: application/json\r\n") {
		t.Errorf("explicit Content-Type was overwritten: %q", wire)
	}
}

func TestCompressionNegotiatesGzip(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{AcceptEncoding: "gzip;q=0.5, identity;q=0, *"})
	r.SetCompression(true)
	r.WriteString("hello")
	r.Close()
	wire := buf.String()
	if !strings.Contains(wire, "Content-Encoding: gzip\r\n") {
		t.Errorf("expected gzip negotiated, got %q", wire)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.WriteString("x")
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}
