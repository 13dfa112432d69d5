package search

type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// Knuth-Morris-Pratt:
// Works by pre-analyzing the pattern, and re-uses whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. The text is read exactly
// once, which makes it a good fit for scanning a file line by line.

// Contains reports whether pattern occurs in text using s. An empty
// pattern is always contained.
func Contains(s Searcher, text, pattern string) bool {
	if len(pattern) == 0 {
		return true
	}
	return s.FindIndexString(text, pattern) >= 0
}
