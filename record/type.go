package record

import (
	"fmt"

	"recordkit/options"
	"recordkit/template"
)

// Field is one declared record field, in declaration order.
type Field struct {
	Name       string
	Default    any
	HasDefault bool
}

// Type is a synthesized record type. Its entire behavior — construction,
// representation, equality, iteration, hashing — is determined by its
// ordered field list and the options it was declared with.
type Type struct {
	name   string
	fields []Field
	index  map[string]int
	kwOnly int
	opts   options.Set

	construct template.Method
	repr      template.Method
	equal     template.Method
	iterate   template.Method
	hash      template.Method

	ov Overrides
}

func (t *Type) Name() string { return t.name }

// Fields returns the declared field names in order. The published tuple is
// what callers use for structural destructuring; the slice is a copy.
func (t *Type) Fields() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}

	return names
}

func (t *Type) NumFields() int       { return len(t.fields) }
func (t *Type) Options() options.Set { return t.opts }
func (t *Type) Frozen() bool         { return t.opts.Has(options.Frozen) }

// KwOnly returns the index of the first keyword-only constructor parameter,
// or NumFields() if every parameter is positional.
func (t *Type) KwOnly() int { return t.kwOnly }

// New constructs an instance from positional arguments.
func (t *Type) New(args ...any) (*Record, error) {
	return t.Apply(args, nil)
}

// Apply constructs an instance from positional and keyword arguments.
// Fields past the keyword-only boundary must appear in kwargs; unsupplied
// fields take their declared default.
func (t *Type) Apply(args []any, kwargs map[string]any) (*Record, error) {
	r := &Record{typ: t, slots: make([]any, len(t.fields))}

	if t.ov.Construct != nil {
		if err := t.ov.Construct(r, args, kwargs); err != nil {
			return nil, err
		}
	} else {
		// Slots are written through the privileged raw path. For frozen
		// types this is the allocation-constructor contract: the guard is
		// armed only after the body succeeds, and a failed instance is
		// discarded without ever escaping unsealed.
		if err := t.construct.Construct(r.setSlot, args, kwargs); err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
	}

	if t.Frozen() {
		r.seal()
	}

	return r, nil
}

// MustApply is Apply for tooling and tests; it panics on error.
func (t *Type) MustApply(args []any, kwargs map[string]any) *Record {
	r, err := t.Apply(args, kwargs)
	if err != nil {
		panic(err)
	}

	return r
}

func kwOnlyIndex(fields []Field) int {
	seenDefault := false
	for i, f := range fields {
		if f.HasDefault {
			seenDefault = true
		} else if seenDefault {
			return i
		}
	}

	return len(fields)
}
