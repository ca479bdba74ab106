package options

import (
	"fmt"
	"strings"
)

// Set is a bit set of record synthesis options.
type Set int

const (
	Frozen      Set = 1 << iota // instances become immutable once construction completes
	Iter                        // synthesize the iteration method
	Hash                        // synthesize the hash method
	KeywordRepr                 // render field names in the representation

	All  Set = (1 << iota) - 1 // all options combined
	None Set = 0               // no options selected
)

var names = map[string]Set{
	"frozen":       Frozen,
	"iter":         Iter,
	"hash":         Hash,
	"keyword_repr": KeywordRepr,
}

// Has reports whether every option in o is present in s.
func (s Set) Has(o Set) bool { return s&o == o }

// String returns the option names in declaration order, comma-separated.
func (s Set) String() string {
	var parts []string
	for _, name := range []string{"frozen", "iter", "hash", "keyword_repr"} {
		if s.Has(names[name]) {
			parts = append(parts, name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, ",")
}

// Parse converts a list of option names into a Set.
// Unknown names are reported, not ignored.
func Parse(opts []string) (Set, error) {
	res := None
	for _, o := range opts {
		s, ok := names[strings.ToLower(strings.TrimSpace(o))]
		if !ok {
			return None, fmt.Errorf("unknown record option: %q", o)
		}

		res |= s
	}

	return res, nil
}
