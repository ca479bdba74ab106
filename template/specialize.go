package template

import (
	"fmt"
	"iter"
)

// Binding pairs a real field name with its optional default value.
type Binding struct {
	Name       string
	Default    any
	HasDefault bool
}

// Method is a template specialized to one record type's field names. It
// shares the compiled body with its template; only the symbol table is new.
type Method struct {
	tmpl *Template
	syms *Symtab
}

// Specialize rebinds a generic template's placeholder symbols to real field
// names, returning an independent callable. The shared template is never
// mutated. The binding list must match the template arity exactly; a
// mismatch is an internal invariant breach and panics.
func Specialize(t *Template, bindings []Binding) Method {
	if len(bindings) != t.arity {
		panic(fmt.Sprintf("template: %s/%d specialized with %d bindings", t.kind, t.arity, len(bindings)))
	}

	syms := &Symtab{
		Names:      make([]string, t.arity),
		Defaults:   make([]any, t.arity),
		HasDefault: make([]bool, t.arity),
		KwOnly:     t.arity,
	}

	// The first defaulted field flips every later field without a default
	// into keyword-only mode. Declaration order is preserved.
	seenDefault := false
	for i, b := range bindings {
		syms.Names[i] = b.Name
		syms.Defaults[i] = b.Default
		syms.HasDefault[i] = b.HasDefault

		if b.HasDefault {
			seenDefault = true
		} else if seenDefault && syms.KwOnly == t.arity {
			syms.KwOnly = i
		}
	}

	return Method{tmpl: t, syms: syms}
}

// Valid reports whether the method is bound to a compiled body.
func (m Method) Valid() bool { return m.tmpl != nil }

func (m Method) Kind() Kind      { return m.tmpl.kind }
func (m Method) Arity() int      { return m.tmpl.arity }
func (m Method) Names() []string { return m.syms.Names }

// KwOnly returns the first keyword-only slot, or the arity if every slot is
// positional.
func (m Method) KwOnly() int { return m.syms.KwOnly }

// Construct runs a constructor body (KindInit or KindNew), writing each
// field through set.
func (m Method) Construct(set FieldWriter, args []any, kwargs map[string]any) error {
	return m.tmpl.construct(m.syms, set, args, kwargs)
}

func (m Method) Repr(r Receiver) string { return m.tmpl.repr(m.syms, r) }

func (m Method) Equal(r, o Receiver) (equal, comparable bool) { return m.tmpl.equal(r, o) }

func (m Method) Iterate(r Receiver) iter.Seq[any] { return m.tmpl.iterate(r) }

func (m Method) Hash(r Receiver) uint64 { return m.tmpl.hash(r) }
