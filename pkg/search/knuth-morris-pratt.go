package search

// KnuthMorrisPratt finds the first occurrence of a pattern in linear time.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return kmpIndex(string(text), string(pattern))
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return kmpIndex(text, pattern)
}

// kmpIndex returns the index of the first match of sub in s, or -1
func kmpIndex(s, sub string) int {
	m, n := len(sub), len(s)
	// got zero target or want, or want is bigger than target
	if m == 0 || n == 0 || n < m {
		return -1
	}
	next := prefixTable(sub)
	i := 0
	for j := 0; j < n; j++ {
		for i > 0 && s[j] != sub[i] {
			i = next[i-1]
		}
		if s[j] == sub[i] {
			i++
		}
		if i == m {
			return j - m + 1
		}
	}
	return -1
}

// prefixTable holds, for each prefix of x, the length of the longest
// proper prefix that is also a suffix
func prefixTable(x string) []int {
	next := make([]int, len(x))
	k := 0
	for i := 1; i < len(x); i++ {
		for k > 0 && x[i] != x[k] {
			k = next[k-1]
		}
		if x[i] == x[k] {
			k++
		}
		next[i] = k
	}
	return next
}
