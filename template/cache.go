// Package template holds the arity-keyed catalog of generic method bodies
// and the specializer that rebinds them to real field names.
//
// A Template is compiled at most once per (Kind, arity) pair for the
// lifetime of the process and shared by every record type of that shape.
// Specialization is a symbol-table swap, not a recompile.
package template

import (
	"errors"
	"strconv"
	"sync"
)

var (
	ErrTooManyArgs  = errors.New("too many positional arguments")
	ErrMissingArg   = errors.New("missing required field")
	ErrUnknownArg   = errors.New("unknown keyword argument")
	ErrDuplicateArg = errors.New("field given both positionally and by name")
)

// Template is a compiled generic method body for one (kind, arity) pair.
// It is immutable once built; Specialize never mutates it.
type Template struct {
	kind  Kind
	arity int
	syms  *Symtab // placeholder symbols _1.._n

	construct constructFunc
	repr      reprFunc
	equal     equalFunc
	iterate   iterateFunc
	hash      hashFunc
}

func (t *Template) Kind() Kind { return t.kind }
func (t *Template) Arity() int { return t.arity }

type key struct {
	kind  Kind
	arity int
}

var (
	mu       sync.Mutex
	cache    = map[key]*Template{}
	compiles = map[key]int{}
)

// Get returns the compiled generic template for (kind, arity), compiling it
// at most once per key. Safe for concurrent use: the lock is held across
// compilation, so concurrent first requests observe the same artifact.
// An unknown kind or non-positive arity is a programming error and panics.
func Get(kind Kind, arity int) *Template {
	if int(kind) <= 0 || int(kind) >= KindTotal {
		panic("template: unknown method kind " + kind.String())
	}

	if arity < 1 {
		panic("template: arity must be positive, got " + strconv.Itoa(arity))
	}

	k := key{kind: kind, arity: arity}

	mu.Lock()
	defer mu.Unlock()

	if t, ok := cache[k]; ok {
		return t
	}

	t := compile(kind, arity)
	cache[k] = t
	compiles[k]++

	return t
}

// Compilations reports how many times the body for (kind, arity) has been
// compiled. It stays at one after the first Get, which is the property the
// cache exists to provide.
func Compilations(kind Kind, arity int) int {
	mu.Lock()
	defer mu.Unlock()

	return compiles[key{kind: kind, arity: arity}]
}
