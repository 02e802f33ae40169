package cookie

import (
	"testing"
	"time"
)

func TestStringOmitsAbsentAttributes(t *testing.T) {
	c, err := New("session", "abc123")
	if err != nil {
		t.Fatal(err)
	}
	got := c.String()
	want := "session=abc123"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestStringIncludesSetAttributes(t *testing.T) {
	c, _ := New("session", "abc123")
	c.Path = "/"
	c.HttpOnly = true
	c.Secure = true
	got := c.String()
	if got != "session=abc123; Path=/; HttpOnly; Secure" {
		t.Errorf("got %q", got)
	}
}

func TestStringNeverComma(t *testing.T) {
	c, _ := New("a", "b")
	c.Domain = "example.com"
	if got := c.String(); containsComma(got) {
		t.Errorf("Set-Cookie must never be comma-joined: %q", got)
	}
}

func containsComma(s string) bool {
	for _, r := range s {
		if r == ',' {
			return true
		}
	}
	return false
}

func TestInvalidNameRejected(t *testing.T) {
	if _, err := New("bad name", "v"); err == nil {
		t.Error("expected error for space in cookie name")
	}
	if _, err := New("", "v"); err == nil {
		t.Error("expected error for empty cookie name")
	}
}

func TestEqualNameVsEqualAttributes(t *testing.T) {
	a, _ := New("x", "1")
	b, _ := New("x", "2")
	if !a.EqualName(b) {
		t.Error("expected equal names")
	}
	if a.EqualAttributes(b) {
		t.Error("expected unequal attributes (different values)")
	}
}

func TestCollectionNameUnique(t *testing.T) {
	c := NewCollection()
	a, _ := New("x", "1")
	b, _ := New("x", "2")
	c.Add(a)
	c.Add(b)
	if c.Len() != 1 {
		t.Fatalf("expected 1 cookie, got %d", c.Len())
	}
	got, _ := c.Get("x")
	if got.Value != "2" {
		t.Errorf("expected replacement value 2, got %q", got.Value)
	}
}

func TestCollectionLatch(t *testing.T) {
	c := NewCollection()
	a, _ := New("x", "1")
	c.Add(a)
	c.Latch()
	b, _ := New("y", "2")
	if err := c.Add(b); err == nil {
		t.Error("expected error adding after latch")
	}
}

func TestParseHeaderFlattens(t *testing.T) {
	got, err := ParseHeader("username=JohnDoe; session_token=abc123")
	if err != nil {
		t.Fatal(err)
	}
	if got["username"] != "JohnDoe" || got["session_token"] != "abc123" {
		t.Errorf("got %v", got)
	}
}

func TestParseHeaderPercentDecodesValues(t *testing.T) {
	got, err := ParseHeader("greeting=hello%20world")
	if err != nil {
		t.Fatal(err)
	}
	if got["greeting"] != "hello world" {
		t.Errorf("got %q", got["greeting"])
	}
}

func TestExpiresFormat(t *testing.T) {
	c, _ := New("x", "1")
	c.Expires = time.Date(2021, 6, 9, 10, 18, 14, 0, time.UTC)
	got := c.String()
	want := "x=1; Expires=Wed, 09 Jun 2021 10:18:14 GMT"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
