package template

import (
	"fmt"
	"hash/maphash"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"recordkit/internal/match"
)

// Receiver is the instance surface a compiled body operates on. Bodies
// address fields by slot index only; names come from the bound Symtab.
type Receiver interface {
	TypeName() string
	// TypeID is an identity token for exact concrete type comparison.
	TypeID() any
	Slot(i int) any
	NumSlots() int
}

// FieldWriter assigns a constructed value to a slot. The caller decides
// whether writes take the guarded or the privileged path.
type FieldWriter func(slot int, v any)

type (
	constructFunc func(sym *Symtab, set FieldWriter, args []any, kwargs map[string]any) error
	reprFunc      func(sym *Symtab, r Receiver) string
	equalFunc     func(r, o Receiver) (equal, comparable bool)
	iterateFunc   func(r Receiver) iter.Seq[any]
	hashFunc      func(r Receiver) uint64
)

// compile builds the generic body for one (kind, arity) pair. Called at
// most once per key, from the cache.
func compile(kind Kind, arity int) *Template {
	t := &Template{kind: kind, arity: arity, syms: placeholders(arity)}

	switch kind {
	default:
		panic("template: cannot compile unknown method kind " + kind.String())
	case KindInit, KindNew:
		t.construct = compileConstruct(arity)
	case KindRepr:
		t.repr = compileRepr(arity, false)
	case KindReprKeyword:
		t.repr = compileRepr(arity, true)
	case KindEqual:
		t.equal = compileEqual(arity)
	case KindIterate:
		t.iterate = compileIterate(arity)
	case KindHash:
		t.hash = compileHash(arity)
	}

	return t
}

func compileConstruct(arity int) constructFunc {
	return func(sym *Symtab, set FieldWriter, args []any, kwargs map[string]any) error {
		if len(args) > sym.KwOnly {
			if sym.KwOnly < arity {
				return fmt.Errorf("%w: at most %d allowed, %s must be passed by name",
					ErrTooManyArgs, sym.KwOnly, sym.Names[sym.KwOnly])
			}

			return fmt.Errorf("%w: at most %d allowed, got %d", ErrTooManyArgs, arity, len(args))
		}

		filled := make([]bool, arity)
		for i, v := range args {
			set(i, v)
			filled[i] = true
		}

		for name, v := range kwargs {
			slot := sym.Slot(name)
			if slot < 0 {
				if hint, ok := match.Closest(name, sym.Names); ok {
					return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownArg, name, hint)
				}

				return fmt.Errorf("%w: %q", ErrUnknownArg, name)
			}

			if filled[slot] {
				return fmt.Errorf("%w: %s", ErrDuplicateArg, name)
			}

			set(slot, v)
			filled[slot] = true
		}

		for i := 0; i < arity; i++ {
			if filled[i] {
				continue
			}

			if sym.HasDefault[i] {
				set(i, sym.Defaults[i])
				continue
			}

			return fmt.Errorf("%w: %s", ErrMissingArg, sym.Names[i])
		}

		return nil
	}
}

func compileRepr(arity int, keyword bool) reprFunc {
	return func(sym *Symtab, r Receiver) string {
		var b strings.Builder
		b.WriteString(r.TypeName())
		b.WriteByte('(')

		for i := 0; i < arity; i++ {
			if i > 0 {
				b.WriteString(", ")
			}

			if keyword {
				b.WriteString(sym.Names[i])
				b.WriteByte('=')
			}

			b.WriteString(reprValue(r.Slot(i)))
		}

		b.WriteByte(')')

		return b.String()
	}
}

func reprValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprint(v)
}

func compileEqual(arity int) equalFunc {
	return func(r, o Receiver) (bool, bool) {
		// Exact concrete type identity only: a structurally identical
		// record of another type is not comparable, not unequal.
		if o == nil || r.TypeID() != o.TypeID() {
			return false, false
		}

		for i := 0; i < arity; i++ {
			if !reflect.DeepEqual(r.Slot(i), o.Slot(i)) {
				return false, true
			}
		}

		return true, true
	}
}

func compileIterate(arity int) iterateFunc {
	return func(r Receiver) iter.Seq[any] {
		return func(yield func(any) bool) {
			for i := 0; i < arity; i++ {
				if !yield(r.Slot(i)) {
					return
				}
			}
		}
	}
}

// hashSeed is process-wide: hashes are stable within a process only.
var hashSeed = maphash.MakeSeed()

// canonical renders a value deterministically: sorted map keys, no pointer
// addresses. Values that compare deep-equal render identically.
var canonical = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func compileHash(arity int) hashFunc {
	return func(r Receiver) uint64 {
		var h maphash.Hash
		h.SetSeed(hashSeed)

		for i := 0; i < arity; i++ {
			h.WriteString(canonical.Sprintf("%#v", r.Slot(i)))
			h.WriteByte(0)
		}

		return h.Sum64()
	}
}
