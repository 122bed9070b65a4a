package pattern

import "strings"

// Translate returns the regular expression source for a glob pattern.
//
// The result is anchored at the start only. Unbalanced braces are not
// rejected here; they surface as a parse failure in Compile.
func (c *realCompiler) Translate(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	b.WriteByte('^')

	state := stateNormal
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		switch ch {
		case '/', '$', '^', '+', '.', '(', ')', '=', '!', '|':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case '?':
			b.WriteByte('.')
		case '[', ']':
			b.WriteByte(ch)
		case '{':
			state = stateInGroup
			b.WriteByte('(')
		case '}':
			state = stateNormal
			b.WriteByte(')')
		case ',':
			if state == stateInGroup {
				b.WriteByte('|')
			} else {
				b.WriteString(`\,`)
			}
		case '*':
			start := i
			for i < len(pattern) && pattern[i] == '*' {
				i++
			}

			if isGlobstar(pattern, start, i) {
				// i sits on the trailing "/" (or the end); the loop step absorbs it.
				b.WriteString(globstarRegex)
			} else {
				b.WriteString(segmentRegex)
				i--
			}
		default:
			b.WriteByte(ch)
		}
	}

	return b.String()
}

// isGlobstar reports whether the run of stars in pattern[start:end] spans a
// whole path segment.
func isGlobstar(pattern string, start, end int) bool {
	if end-start < 2 {
		return false
	}
	if start > 0 && pattern[start-1] != '/' {
		return false
	}
	return end == len(pattern) || pattern[end] == '/'
}
