package body

import "testing"

func TestDecodeFormURLEncodedScenarioS2(t *testing.T) {
	got, err := DecodeFormURLEncoded([]byte("name=ab&c=d+e"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got["name"].AsString(); v != "ab" {
		t.Errorf("name = %q, want ab", v)
	}
	if v, _ := got["c"].AsString(); v != "d e" {
		t.Errorf("c = %q, want %q", v, "d e")
	}
}

func TestDecodeFormURLEncodedEmptyBody(t *testing.T) {
	got, err := DecodeFormURLEncoded([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestDecodeFormURLEncodedSegmentWithoutEquals(t *testing.T) {
	got, err := DecodeFormURLEncoded([]byte("flag&name=x"))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got["flag"].AsString(); !ok || v != "" {
		t.Errorf("flag = %q, ok=%v, want empty string", v, ok)
	}
}

func TestDecodeFormURLEncodedPercentDecodesBothSides(t *testing.T) {
	got, err := DecodeFormURLEncoded([]byte("na%6de=va%6cue"))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got["name"].AsString(); !ok || v != "value" {
		t.Errorf("got key/value %v/%q", got, v)
	}
}

func TestDecodeFormURLEncodedSanitisesKeys(t *testing.T) {
	got, err := DecodeFormURLEncoded([]byte("123field-name!=x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got["fieldname"]; !ok {
		t.Errorf("expected sanitised key %q in %v", "fieldname", got)
	}
}
