// Package query parses URL-encoded query strings the way the scan listener expects them:
// both '&' and ';' separate pairs, blank values are dropped and malformed escapes are kept verbatim.
package query

import (
	"strings"
	"unicode/utf8"
)

// Values maps a parameter name to the values it was given, in order of appearance.
type Values map[string][]string

// Get returns the first value associated with key, or an empty string if there is none.
func (v Values) Get(key string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether key was given a non-blank value.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Parse decodes a raw query string. It never fails: pairs that cannot be interpreted are skipped.
func Parse(raw string) Values {
	values := make(Values)
	for _, pair := range strings.FieldsFunc(raw, isSeparator) {
		name, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			continue
		}
		key := Unescape(name)
		values[key] = append(values[key], Unescape(value))
	}
	return values
}

func isSeparator(r rune) bool {
	return r == '&' || r == ';'
}

// Unescape decodes '+' as a space and every well-formed %XX sequence. Incomplete or non-hex escapes
// are copied as-is, and byte sequences that are not valid UTF-8 are replaced with U+FFFD.
func Unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	out := b.String()
	if !utf8.ValidString(out) {
		out = strings.ToValidUTF8(out, string(utf8.RuneError))
	}
	return out
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
