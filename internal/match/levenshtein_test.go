package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"x", "x", 0},
		{"owner", "owner", 0},

		// Empty vs non-empty
		{"", "tag", 3},
		{"tag", "", 3},

		// Single character operations
		{"x", "y", 1},      // substitution
		{"x", "xs", 1},     // insertion
		{"xs", "x", 1},     // deletion
		{"hosts", "host", 1},
		{"host", "hosts", 1},

		// Multiple operations
		{"retries", "entries", 2},
		{"queue", "value", 3},

		// Case-sensitive
		{"Owner", "owner", 1},
		{"HOST", "host", 4},

		// Typical constructor keyword typos
		{"ownr", "owner", 1},
		{"lable", "label", 2},
		{"widht", "width", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"host", "port", "owner", "retries"}

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"ownr", "owner", true},
		{"prot", "port", true},
		{"retires", "retries", true},
		{"zzzzzz", "", false},
		{"completely_different", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.name, candidates)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Closest(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClosestNoCandidates(t *testing.T) {
	if _, ok := Closest("anything", nil); ok {
		t.Error("Closest with no candidates must not suggest")
	}
}
