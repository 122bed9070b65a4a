package globstar

import (
	"path/filepath"
	"strings"
)

// Expand replaces every ** in pattern with each directory it can stand for.
func (e *realExpander) Expand(pattern string) []string {
	var results []string

	// Patterns still holding a globstar; the last element is processed next.
	pending := []string{pattern}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !strings.Contains(current, globstar) {
			results = append(results, current)
			continue
		}

		prefix, remainder := splitGlobstar(current)

		if prefix != "" {
			exists, err := e.PathExists(prefix)
			if err != nil {
				e.Logger.Warnf("Skipping %s: %v", current, err)
				continue
			}
			if !exists {
				e.VerbosePrint("Globstar root %s does not exist", prefix)
				continue
			}
		}

		candidates := e.directories(prefix)

		if remainder == "" || remainder == "/" {
			// "dir/**" and "dir/**/" match dir itself, and every entry below it.
			results = append(results, prefix)
			remainder = "*"
		}

		// Push in reverse so candidates are expanded in discovery order.
		for i := len(candidates) - 1; i >= 0; i-- {
			pending = append(pending, joinRemainder(candidates[i], remainder))
		}
	}

	return results
}

// splitGlobstar splits pattern on its first ** into the literal prefix and
// the rest of the pattern, later globstars included.
func splitGlobstar(pattern string) (string, string) {
	parts := strings.Split(pattern, globstar)
	return parts[0], strings.Join(parts[1:], globstar)
}

// joinRemainder substitutes dir for the globstar in front of remainder.
func joinRemainder(dir, remainder string) string {
	if dir == "" {
		return strings.TrimPrefix(remainder, "/")
	}
	return filepath.Join(dir, remainder)
}
