package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a type identifier for fuzzy comparison: a verbatim
// '@' prefix and any generic arity suffix ("List`1") are dropped, underscores
// are removed and letters are lowered. "NetworkSettings" and
// "network_settings" normalize to the same key.
func NormalizeIdent(s string) string {
	s = strings.TrimPrefix(s, "@")
	if i := strings.IndexByte(s, '`'); i >= 0 {
		s = s[:i]
	}

	return strings.Map(func(r rune) rune {
		if r == '_' {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
