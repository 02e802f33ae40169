package codec

import (
	"reflect"
	"testing"
)

func TestQuotedListBasic(t *testing.T) {
	got := QuotedList("a, b,c", QuotedListOptions{})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestQuotedListPreservesQuotedWhitespace(t *testing.T) {
	got := QuotedList(`a, "b c", d`, QuotedListOptions{})
	want := []string{"a", "b c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestQuotedListEscapes(t *testing.T) {
	got := QuotedList(`"a\nb"`, QuotedListOptions{Escapes: true})
	want := []string{"a\nb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestQuotedListTrailingItem(t *testing.T) {
	got := QuotedList("a,b", QuotedListOptions{})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestDecodeEscapeHexAndOctal(t *testing.T) {
	b, n := decodeEscape("x41rest")
	if string(b) != "A" || n != 3 {
		t.Errorf("hex escape: got %q n=%d", b, n)
	}
	b, n = decodeEscape("101rest")
	if string(b) != "A" || n != 3 {
		t.Errorf("octal escape: got %q n=%d", b, n)
	}
}

func TestKVListBasic(t *testing.T) {
	got, err := KVList("a=1; b=2; c", KVOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []KVEntry{
		{Key: "a", Value: "1", HasValue: true},
		{Key: "b", Value: "2", HasValue: true},
		{Key: "c", HasValue: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v want %+v", got, want)
	}
}

func TestKVListZeroLengthKeyIsError(t *testing.T) {
	_, err := KVList("=1", KVOptions{})
	if err == nil {
		t.Error("expected error for zero-length key")
	}
}

func TestKVListCustomDelimiters(t *testing.T) {
	got, err := KVList("a:1,b:2", KVOptions{PairDelimiter: ',', Separator: ':'})
	if err != nil {
		t.Fatal(err)
	}
	want := []KVEntry{
		{Key: "a", Value: "1", HasValue: true},
		{Key: "b", Value: "2", HasValue: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v want %+v", got, want)
	}
}
