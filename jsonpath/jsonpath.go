// Package jsonpath provides the path helpers used by JSON predicate
// handling: splitting an identifier path from its pointer tail and resolving
// JSON-pointer-style paths against raw documents.
package jsonpath

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/wyqzos/milvus/like"
)

// SplitAtFirstSlashDigit splits s at the first '/' that is immediately
// followed by an ASCII digit, returning the part before the slash and the
// part from the slash on. Paths like "/data/items/0/name" split into the
// field identifier "/data/items" and the element pointer "/0/name".
//
// "ASCII digit" is strictly '0'..'9'; digits from other scripts do not
// count. If no such position exists the whole input is returned as the first
// part. The function only slices, it never copies.
func SplitAtFirstSlashDigit(s string) (string, string) {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '/' && isASCIIDigit(s[i+1]) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ToGJSONPath converts a JSON-pointer-style path ("/a/b/0") to the dotted
// gjson form ("a.b.0"), escaping the bytes gjson treats specially inside a
// key. An empty pointer or bare "/" yields "".
func ToGJSONPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(pointer))
	for i := 0; i < len(pointer); i++ {
		switch c := pointer[i]; c {
		case '/':
			b.WriteByte('.')
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Get resolves a JSON-pointer-style path against a raw document.
func Get(doc []byte, pointer string) gjson.Result {
	return gjson.GetBytes(doc, ToGJSONPath(pointer))
}

// MatchPointer evaluates a compiled LIKE matcher against the value at the
// given pointer path. Only string values are matched; a missing path or a
// non-string value yields false, matching the silent-false semantics of
// heterogeneously-typed predicate slots.
func MatchPointer(doc []byte, pointer string, m *like.Matcher) bool {
	res := Get(doc, pointer)
	if res.Type != gjson.String {
		return false
	}
	return m.MatchString(res.Str)
}
