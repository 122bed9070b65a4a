package pattern

// Match reports whether s matches the glob pattern.
// The match is anchored at the start of s but not at its end.
func (c *realCompiler) Match(pattern, s string) (bool, error) {
	re, err := c.Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
