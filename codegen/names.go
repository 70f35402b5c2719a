package codegen

import (
	"strconv"
	"strings"
	"unicode"
)

// cIdent turns a free-form name into a C/Rust identifier.
func cIdent(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		s = "_" + s
	}
	return s
}

var witKeywords = map[string]bool{
	"bool": true, "f32": true, "f64": true, "string": true, "char": true,
	"record": true, "type": true, "enum": true, "variant": true, "flags": true,
	"list": true, "option": true, "result": true, "resource": true, "func": true,
	"interface": true, "world": true, "use": true, "import": true, "export": true,
	"package": true, "include": true, "with": true, "static": true, "own": true,
	"borrow": true, "tuple": true, "future": true, "stream": true,
}

// kebab lowercases name and joins its alphanumeric words with '-'.
// Words that would start with a digit get an 'n' prefix.
func kebab(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r >= unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	for i, w := range words {
		if unicode.IsDigit(rune(w[0])) {
			words[i] = "n" + w
		}
	}
	if len(words) == 0 {
		return "field"
	}
	return strings.Join(words, "-")
}

// witIdent escapes keywords with '%'.
func witIdent(s string) string {
	if witKeywords[s] {
		return "%" + s
	}
	return s
}

// uniqueNames applies conv to each name and disambiguates collisions by
// appending the field id.
func uniqueNames(names []string, ids []uint8, conv func(string) string, sep string) []string {
	out := make([]string, len(names))
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		s := conv(n)
		if seen[s] {
			s += sep + strconv.Itoa(int(ids[i]))
		}
		seen[s] = true
		out[i] = s
	}
	return out
}
