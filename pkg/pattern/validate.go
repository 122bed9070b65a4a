package pattern

import "fmt"

// Validate checks that brace groups in the pattern are balanced.
func (c *realCompiler) Validate(pattern string) error {
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return fmt.Errorf("%w: unmatched '}' at offset %d in %q", ErrMalformedPattern, i, pattern)
			}
			depth--
		}
	}

	if depth > 0 {
		return fmt.Errorf("%w: %d unclosed '{' in %q", ErrMalformedPattern, depth, pattern)
	}

	return nil
}
