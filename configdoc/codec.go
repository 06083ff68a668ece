package configdoc

import (
	"strings"
	"unicode/utf8"
)

// The stored document mixes two historical encoding regimes: text written by
// older connector builds is plain ASCII with XML entities, text written by
// the current build is UTF-8 expanded byte-per-character before escaping.
// DecodeValue therefore only re-interprets byte sequences as UTF-8 when the
// entity-decoded text contains non-ASCII characters; pure-ASCII text passes
// through untouched.

// EncodeValue converts a UTF-8 string into the document's wire text form:
// byte-per-character expansion followed by entity escaping of the XML
// specials and newlines.
func EncodeValue(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range []byte(text) {
		b.WriteRune(rune(c))
	}
	v := b.String()
	v = strings.ReplaceAll(v, "&", "&amp;")
	v = strings.ReplaceAll(v, "'", "&apos;")
	v = strings.ReplaceAll(v, `"`, "&quot;")
	v = strings.ReplaceAll(v, "<", "&lt;")
	v = strings.ReplaceAll(v, ">", "&gt;")
	v = strings.ReplaceAll(v, "\n", "&#xA;")
	return v
}

// DecodeValue is the inverse of EncodeValue: entity unescaping, newline
// normalization, then the conditional UTF-8 re-interpretation pass. For any
// text x, DecodeValue(EncodeValue(x)) == x.
func DecodeValue(raw string) string {
	v := raw
	v = strings.ReplaceAll(v, "&#xA;", "\n")
	v = strings.ReplaceAll(v, "&apos;", "'")
	v = strings.ReplaceAll(v, "&quot;", `"`)
	v = strings.ReplaceAll(v, "&lt;", "<")
	v = strings.ReplaceAll(v, "&gt;", ">")
	v = strings.ReplaceAll(v, "&amp;", "&")
	v = strings.ReplaceAll(v, "\r\n", "\n")

	if isASCII(v) {
		return v
	}
	if decoded, ok := reinterpretUTF8(v); ok {
		return decoded
	}
	return v
}

// DecodeAgentMessage decodes a status message returned by the remote agent.
// Agent replies carry an extra escaping layer on top of the document wire
// form plus literal newline markers, so the doubled entities are handled
// before the plain ones.
func DecodeAgentMessage(raw string) string {
	v := raw
	v = strings.ReplaceAll(v, "&amp;apos;", "'")
	v = strings.ReplaceAll(v, "&amp;quot;", `"`)
	v = strings.ReplaceAll(v, "&apos;", "'")
	v = strings.ReplaceAll(v, "&quot;", `"`)
	v = strings.ReplaceAll(v, "&#xA;", "\n")
	v = strings.ReplaceAll(v, `\n`, "\n")
	v = strings.ReplaceAll(v, "/n", "\n")
	return strings.TrimSpace(v)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// reinterpretUTF8 maps each code point below U+0100 back to a single byte
// and accepts the result only when it forms valid UTF-8. Any code point
// outside the byte range means the text was already decoded.
func reinterpretUTF8(s string) (string, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return "", false
		}
		buf = append(buf, byte(r))
	}
	if !utf8.Valid(buf) {
		return "", false
	}
	return string(buf), true
}
