package codec

import "testing"

func TestSanitizeKeyTrimsLeadingDigitsAndFiltersChars(t *testing.T) {
	if got := SanitizeKey("123abc"); got != "abc" {
		t.Errorf("got %q want %q", got, "abc")
	}
	if got := SanitizeKey("field-name!"); got != "fieldname" {
		t.Errorf("got %q want %q", got, "fieldname")
	}
	if got := SanitizeKey("007_agent"); got != "_agent" {
		t.Errorf("got %q want %q", got, "_agent")
	}
}
