package errors

import "testing"

func TestGetKnownCode(t *testing.T) {
	if got := Get(MoodInvalid.Code); got != MoodInvalid {
		t.Errorf("Get(%s) = %+v, want %+v", MoodInvalid.Code, got, MoodInvalid)
	}
}

func TestGetUnknownCode(t *testing.T) {
	got := Get("NO_SUCH_CODE")
	if got.Code != "NO_SUCH_CODE" || got.Message != "Unexpected error" {
		t.Errorf("Get(NO_SUCH_CODE) = %+v, want generic definition", got)
	}
}

func TestLookupCodesMatchKeys(t *testing.T) {
	for code, def := range Lookup {
		if def.Code != code {
			t.Errorf("Lookup[%s].Code = %s, keys must match codes", code, def.Code)
		}
		if def.Message == "" {
			t.Errorf("Lookup[%s] has empty message", code)
		}
	}
}
