package configdoc

import "testing"

func TestPackFamilyKey(t *testing.T) {
	if got := PackFamilyKey("FAM1", ""); got != "FAM1" {
		t.Errorf("family-level key = %q", got)
	}
	if got := PackFamilyKey("FAM1", "SUB2"); got != "FAM1|SUB2" {
		t.Errorf("item-level key = %q", got)
	}
}

func TestUnpackFamilyKey(t *testing.T) {
	cases := []struct {
		key    string
		family string
		sub    string
	}{
		{"FAM1", "FAM1", ""},
		{"FAM1|SUB2", "FAM1", "SUB2"},
		{"FAM1|", "FAM1", ""},
		// Only the first delimiter splits; the remainder stays intact.
		{"FAM1|SUB2|X", "FAM1", "SUB2|X"},
	}
	for _, tc := range cases {
		family, sub := UnpackFamilyKey(tc.key)
		if family != tc.family || sub != tc.sub {
			t.Errorf("UnpackFamilyKey(%q) = (%q, %q), want (%q, %q)",
				tc.key, family, sub, tc.family, tc.sub)
		}
	}
}

func TestFamilyKeyRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"F", ""},
		{"F", "S"},
		{"123", "456"},
	}
	for _, p := range pairs {
		family, sub := UnpackFamilyKey(PackFamilyKey(p[0], p[1]))
		if family != p[0] || sub != p[1] {
			t.Errorf("round trip of (%q, %q) = (%q, %q)", p[0], p[1], family, sub)
		}
	}
}
