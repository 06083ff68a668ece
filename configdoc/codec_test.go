package configdoc

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []string{
		"",
		"plain text",
		"O'Brien & Co <x>",
		`quoted "value"`,
		"line1\nline2",
		"Société Générale",
		"déjà vu à l'évidence",
		"&apos;",
		"&#xA;",
	}
	for _, v := range values {
		got := DecodeValue(EncodeValue(v))
		if got != v {
			t.Errorf("round trip of %q: got %q", v, got)
		}
	}
}

func TestEncodeValueExpandsBytes(t *testing.T) {
	// Each UTF-8 byte becomes its own character below U+0100.
	if got := EncodeValue("é"); got != "Ã©" {
		t.Errorf("expected byte expansion of é, got %q", got)
	}
	if got := EncodeValue("a'b"); got != "a&apos;b" {
		t.Errorf("expected entity escaping, got %q", got)
	}
}

func TestDecodeValueASCIIFastPath(t *testing.T) {
	if got := DecodeValue("plain text"); got != "plain text" {
		t.Errorf("ASCII text should pass through, got %q", got)
	}
	// A doubled entity loses exactly one layer.
	if got := DecodeValue("&amp;apos;"); got != "&apos;" {
		t.Errorf("expected single unescape, got %q", got)
	}
}

func TestDecodeValueReinterpretsExpandedBytes(t *testing.T) {
	if got := DecodeValue("Ã©"); got != "é" {
		t.Errorf("expected UTF-8 reinterpretation, got %q", got)
	}
}

func TestDecodeValueKeepsAlreadyDecodedText(t *testing.T) {
	// Text that is already proper UTF-8 does not form valid UTF-8 when
	// collapsed to bytes, so it must come back unchanged.
	if got := DecodeValue("déjà"); got != "déjà" {
		t.Errorf("already decoded text mangled: %q", got)
	}
}

func TestDecodeValueNormalizesNewlines(t *testing.T) {
	if got := DecodeValue("a&#xA;b"); got != "a\nb" {
		t.Errorf("expected entity newline, got %q", got)
	}
	if got := DecodeValue("a\r\nb"); got != "a\nb" {
		t.Errorf("expected CRLF normalization, got %q", got)
	}
}

func TestDecodeAgentMessage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Synchronisation terminee.  ", "Synchronisation terminee."},
		{"&amp;quot;Docs&amp;quot; importes/n3 lignes", "\"Docs\" importes\n3 lignes"},
		{"&amp;apos;ART&amp;apos; traite", "'ART' traite"},
		{`ligne 1\nligne 2`, "ligne 1\nligne 2"},
		{"ligne 1&#xA;ligne 2", "ligne 1\nligne 2"},
		{"&apos;simple&apos;", "'simple'"},
	}
	for _, tc := range cases {
		if got := DecodeAgentMessage(tc.in); got != tc.want {
			t.Errorf("DecodeAgentMessage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
