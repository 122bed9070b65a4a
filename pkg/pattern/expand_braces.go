package pattern

// ExpandBraces performs shell-style brace expansion.
// Nested groups are supported. If no balanced group is present the
// original pattern is returned as the only element.
func ExpandBraces(pattern string) []string {
	open, closing := findBraceGroup(pattern)
	if open == -1 {
		return []string{pattern}
	}

	prefix := pattern[:open]
	suffix := pattern[closing+1:]

	var results []string
	for _, alt := range splitAlternatives(pattern[open+1 : closing]) {
		results = append(results, ExpandBraces(prefix+alt+suffix)...)
	}
	return results
}

// findBraceGroup returns the offsets of the first { and its matching }.
func findBraceGroup(pattern string) (int, int) {
	open := -1
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			if depth == 0 {
				open = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return open, i
			}
		}
	}
	return -1, -1
}

// splitAlternatives splits a group body on commas that are not nested in
// an inner group.
func splitAlternatives(body string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, body[start:])
}
