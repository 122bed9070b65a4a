package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lerenn/globr/pkg/pattern"
)

// Resolve returns the sorted, deduplicated absolute paths matching pattern.
func (r *realResolver) Resolve(glob string) ([]string, error) {
	if !pattern.HasMeta(glob) {
		return []string{glob}, nil
	}

	if r.strict {
		if err := r.compiler.Validate(glob); err != nil {
			return nil, err
		}
	}

	expanded, err := r.FS.ExpandPath(glob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTildeExpansion, err)
	}

	matches := make(map[string]struct{})
	for _, subPattern := range r.subPatterns(expanded) {
		if subPattern == "" {
			continue
		}

		paths, err := r.FS.Glob(subPattern)
		if err != nil {
			r.Logger.Warnf("Failed to match %s: %v", subPattern, err)
			continue
		}

		for _, path := range paths {
			normalized, err := r.FS.NormalizePath(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNormalization, err)
			}
			matches[normalized] = struct{}{}
		}
	}

	results := make([]string, 0, len(matches))
	for path := range matches {
		results = append(results, path)
	}
	sort.Strings(results)

	r.VerbosePrint("Resolved %s to %d path(s)", glob, len(results))
	return results, nil
}

// subPatterns returns the globstar-free patterns whose matches make up the
// matches of glob. Brace groups are expanded first when a globstar is
// present, so that alternatives in the literal prefix are walked.
func (r *realResolver) subPatterns(glob string) []string {
	if !strings.Contains(glob, "**") {
		return r.expander.Expand(glob)
	}

	var subPatterns []string
	for _, alternative := range pattern.ExpandBraces(glob) {
		subPatterns = append(subPatterns, r.expander.Expand(alternative)...)
	}
	return subPatterns
}
