package template

import "strconv"

// Symtab is the symbol table a compiled body consults for everything that
// depends on field identity: names, default values, and the keyword-only
// boundary. Generic templates carry placeholder symbols (_1.._n); the
// specializer swaps in the real ones without touching the body.
type Symtab struct {
	Names      []string
	Defaults   []any
	HasDefault []bool

	// KwOnly is the first keyword-only slot: slots at or past this index
	// must be supplied by name. Equal to len(Names) when every slot is
	// positional.
	KwOnly int
}

func (s *Symtab) Arity() int { return len(s.Names) }

// Slot returns the slot bound to name, or -1.
func (s *Symtab) Slot(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}

	return -1
}

// placeholders builds the generic symbol table for arity n: names _1.._n,
// no defaults, no keyword-only boundary.
func placeholders(n int) *Symtab {
	names := make([]string, n)
	for i := range names {
		names[i] = "_" + strconv.Itoa(i+1)
	}

	return &Symtab{
		Names:      names,
		Defaults:   make([]any, n),
		HasDefault: make([]bool, n),
		KwOnly:     n,
	}
}
