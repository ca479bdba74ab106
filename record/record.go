package record

import (
	"fmt"
	"iter"

	"github.com/davecgh/go-spew/spew"
)

// Record is an instance of a synthesized Type. Its attributes are exactly
// its field values, held in declaration order.
type Record struct {
	typ    *Type
	slots  []any
	sealed bool
}

func (r *Record) Type() *Type { return r.typ }

// TypeName, TypeID, Slot and NumSlots implement template.Receiver: compiled
// bodies address fields by slot index only.
func (r *Record) TypeName() string { return r.typ.name }
func (r *Record) TypeID() any      { return r.typ }
func (r *Record) Slot(i int) any   { return r.slots[i] }
func (r *Record) NumSlots() int    { return len(r.slots) }

// setSlot is the privileged write path: it bypasses both the mutability
// guard and any user interceptor. Constructors use it exclusively.
func (r *Record) setSlot(i int, v any) { r.slots[i] = v }

// Get returns the value of the named field. Reads never fail on sealed
// instances.
func (r *Record) Get(name string) (any, error) {
	i, ok := r.typ.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrNoSuchField, r.typ.name, name)
	}

	return r.slots[i], nil
}

// Set assigns the named field. A sealed frozen instance rejects the write
// with an ImmutabilityError naming the field.
func (r *Record) Set(name string, v any) error {
	i, ok := r.typ.index[name]
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrNoSuchField, r.typ.name, name)
	}

	if r.sealed {
		return &ImmutabilityError{Record: r.typ.name, Field: name, Op: "set"}
	}

	if f := r.typ.ov.SetField; f != nil {
		v2, err := f(r, name, v)
		if err != nil {
			return err
		}

		v = v2
	}

	r.slots[i] = v

	return nil
}

// Delete clears the named field. A sealed frozen instance rejects the
// delete with an ImmutabilityError naming the field.
func (r *Record) Delete(name string) error {
	i, ok := r.typ.index[name]
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrNoSuchField, r.typ.name, name)
	}

	if r.sealed {
		return &ImmutabilityError{Record: r.typ.name, Field: name, Op: "delete"}
	}

	if f := r.typ.ov.DelField; f != nil {
		if err := f(r, name); err != nil {
			return err
		}
	}

	r.slots[i] = nil

	return nil
}

// String renders the record as TypeName(v1, v2) or TypeName(f1=v1, f2=v2)
// depending on the keyword_repr option.
func (r *Record) String() string {
	if f := r.typ.ov.Repr; f != nil {
		return f(r)
	}

	return r.typ.repr.Repr(r)
}

// Equal reports field-wise equality with another record of the exact same
// type. Records of different types are never equal, even with identical
// field lists and values; use CanEqual to tell inequality apart from
// incomparability.
func (r *Record) Equal(o *Record) bool {
	eq, ok := r.compare(o)
	return eq && ok
}

// CanEqual reports whether o is comparable to r at all, which requires the
// exact same concrete type.
func (r *Record) CanEqual(o *Record) bool {
	_, ok := r.compare(o)
	return ok
}

func (r *Record) compare(o *Record) (equal, comparable bool) {
	if o == nil {
		return false, false
	}

	if f := r.typ.ov.Equal; f != nil {
		if r.typ != o.typ {
			return false, false
		}

		return f(r, o), true
	}

	return r.typ.equal.Equal(r, o)
}

// Values returns a fresh, lazy iteration over the field values in
// declaration order. Fails unless the type was declared with iter.
func (r *Record) Values() (iter.Seq[any], error) {
	if f := r.typ.ov.Iterate; f != nil {
		return f(r), nil
	}

	if !r.typ.iterate.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrNotIterable, r.typ.name)
	}

	return r.typ.iterate.Iterate(r), nil
}

// Hash combines all field values into one ordered tuple hash. Equal records
// hash equal. Fails unless the type was declared with hash.
func (r *Record) Hash() (uint64, error) {
	if f := r.typ.ov.Hash; f != nil {
		return f(r), nil
	}

	if !r.typ.hash.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrNotHashable, r.typ.name)
	}

	return r.typ.hash.Hash(r), nil
}

var dumpCfg = &spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders the record for debugging, one field per line.
func (r *Record) Dump() string {
	vals := make(map[string]any, len(r.slots))
	for i, f := range r.typ.fields {
		vals[f.Name] = r.slots[i]
	}

	return r.typ.name + " " + dumpCfg.Sdump(vals)
}
