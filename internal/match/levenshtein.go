// Package match suggests plausible field names for misspelled constructor
// keywords.
package match

// Levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Closest returns the candidate nearest to name when it is close enough to
// be a plausible typo: within half the name's length, but never more than
// two edits for short names.
func Closest(name string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1

	for _, c := range candidates {
		d := Levenshtein(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist < 0 {
		return "", false
	}

	limit := max(len(name)/2, 2)
	if bestDist > limit {
		return "", false
	}

	return best, true
}
