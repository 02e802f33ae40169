package status

import "testing"

func TestTextKnownCodes(t *testing.T) {
	cases := map[int]string{
		200: "OK",
		404: "Not Found",
		500: "Internal Server Error",
		402: "Payment Required",
	}
	for code, want := range cases {
		if got := Text(code); got != want {
			t.Errorf("Text(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestTextFallback(t *testing.T) {
	if got := Text(799); got != fallbackReason {
		t.Errorf("Text(799) = %q, want fallback", got)
	}
}

func TestProtocolErrorWireStatus(t *testing.T) {
	err := New(BodyTooLarge, "body exceeds ceiling")
	if err.Status != 413 {
		t.Errorf("Status = %d, want 413", err.Status)
	}
	if !IsKind(err, BodyTooLarge) {
		t.Error("IsKind failed to match")
	}
}

func TestReadTimeoutIs408(t *testing.T) {
	err := New(ReadTimeout, "")
	if err.Status != 408 {
		t.Errorf("Status = %d, want 408", err.Status)
	}
}
