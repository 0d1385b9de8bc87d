package utils

import (
	"strings"
	"testing"
)

func TestGenerateReferenceCodeFormat(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := GenerateReferenceCode()

		if len(code) != 12 {
			t.Fatalf("length = %d, want 12 (%q)", len(code), code)
		}
		if code != strings.ToUpper(code) {
			t.Errorf("code %q not uppercase", code)
		}
		for _, r := range code {
			if !strings.ContainsRune("0123456789ABCDEF", r) {
				t.Fatalf("code %q contains non-hex rune %q", code, r)
			}
		}
		seen[code] = true
	}

	// Collisions are possible but should not happen across 100 draws.
	if len(seen) != 100 {
		t.Errorf("only %d distinct codes out of 100", len(seen))
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Futsal Arena", "futsal-arena"},
		{"  GOR Senayan  ", "gor-senayan"},
		{"Café & Lounge", "caf-lounge"},
		{"a--b", "a-b"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseTimeRFC3339Fallback(t *testing.T) {
	if _, err := ParseTimeRFC3339("2026-10-01T09:00:00Z"); err != nil {
		t.Errorf("RFC3339: %v", err)
	}
	if _, err := ParseTimeRFC3339("2026-10-01T09:00"); err != nil {
		t.Errorf("datetime-local fallback: %v", err)
	}
	if _, err := ParseTimeRFC3339("not a time"); err == nil {
		t.Error("garbage accepted")
	}
}
