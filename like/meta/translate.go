package meta

import (
	"github.com/wyqzos/milvus/like/segment"
)

// Regex fragments the wildcards translate to. The [\s\S] class matches any
// byte including newline, which '.' does not without the s flag; using the
// class keeps the translation independent of flag handling in the backend.
const (
	regexAnyRun  = `[\s\S]*`
	regexAnyByte = `[\s\S]`
)

// regexMeta marks the bytes that must be escaped in the translated regex.
var regexMeta = func() (t [256]bool) {
	for _, b := range []byte(`\.+*?()|[]{}^$`) {
		t[b] = true
	}
	return
}()

// TranslateRegex compiles a LIKE pattern into an equivalent regex whose
// semantics define the reference behavior of the matcher:
//
//   - unescaped '%' becomes [\s\S]*
//   - unescaped '_' becomes [\s\S]
//   - every other byte is copied, regex-escaped where needed
//
// The result is intended for a backend configured for full-input match; see
// NewRegexMatcher. Returns a *segment.ParseError for a trailing lone escape.
//
// Example:
//
//	re, _ := meta.TranslateRegex([]byte(`file\_%.txt`))
//	// re == `file_[\s\S]*\.txt`
func TranslateRegex(pattern []byte) ([]byte, error) {
	out := make([]byte, 0, len(pattern)+len(pattern)/2)
	err := segment.Scan(pattern, func(tok segment.Token) bool {
		switch tok.Kind {
		case segment.TokenAnyRun:
			out = append(out, regexAnyRun...)
		case segment.TokenAnyByte:
			out = append(out, regexAnyByte...)
		default:
			if regexMeta[tok.Byte] {
				out = append(out, '\\')
			}
			out = append(out, tok.Byte)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
