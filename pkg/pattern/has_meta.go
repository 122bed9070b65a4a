package pattern

import "strings"

// metaChars are the characters that make a pattern require filesystem matching.
const metaChars = "*?[]"

// HasMeta reports whether the pattern contains any glob metacharacter.
// Brace groups alone do not count.
func HasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, metaChars)
}
