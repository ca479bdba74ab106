// Package record synthesizes the standard behavioral methods of a plain
// structured record type — construction, representation, equality,
// iteration, hashing, and immutability enforcement — from an ordered list
// of field names alone.
//
// Method bodies come from a process-wide catalog of generic templates keyed
// by (method kind, field count); per-type specialization is a symbol-table
// rebind, so declaring the hundredth three-field record compiles nothing.
package record

import (
	"iter"
	"reflect"
	"strconv"

	"recordkit/internal/diagnostic"
	"recordkit/internal/resolve"
	"recordkit/options"
	"recordkit/template"
)

// Overrides carries user-defined method implementations. A non-nil entry
// replaces synthesis for that method; an entry that collides with an
// explicitly requested toggle is a configuration error.
type Overrides struct {
	// Construct replaces the synthesized constructor entirely.
	Construct func(r *Record, args []any, kwargs map[string]any) error

	// Repr and Equal win over synthesis silently, like any hand-written
	// method would.
	Repr  func(r *Record) string
	Equal func(a, b *Record) bool

	// Iterate and Hash conflict with the iter/hash options: defining one
	// and requesting synthesis of the same method is ambiguous intent.
	Iterate func(r *Record) iter.Seq[any]
	Hash    func(r *Record) uint64

	// SetField intercepts ordinary field writes after construction; it may
	// reject the write or transform the value before it is stored.
	// Mutually exclusive with the frozen option, as is DelField.
	SetField func(r *Record, name string, value any) (any, error)
	DelField func(r *Record, name string) error
}

// Synthesize builds a record type from an ordered field list. Every
// configuration problem is collected and reported at once; on error no
// type is returned.
func Synthesize(name string, fields []Field, opts options.Set, ov Overrides) (*Type, error) {
	var diags diagnostic.Diagnostics

	if name == "" {
		diags.AddError("unnamed-record", "record type needs a name", "", "")
	}

	if len(fields) == 0 {
		diags.AddError("no-fields", ErrNoFields.Error(), name, "")
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			diags.AddError("unnamed-field", "field needs a name", name, "#"+strconv.Itoa(i))
			continue
		}

		if _, dup := index[f.Name]; dup {
			diags.AddError("duplicate-field", "field declared twice", name, f.Name)
			continue
		}

		index[f.Name] = i
	}

	if opts.Has(options.Frozen) && (ov.SetField != nil || ov.DelField != nil) {
		diags.AddError("frozen-interceptor",
			"a frozen record cannot define its own write or delete interceptor", name, "")
	}

	if opts.Has(options.Iter) && ov.Iterate != nil {
		diags.AddError("iter-conflict",
			"iter requested but an iteration method is already defined", name, "")
	}

	if opts.Has(options.Hash) && ov.Hash != nil {
		diags.AddError("hash-conflict",
			"hash requested but a hash method is already defined", name, "")
	}

	if !diags.IsValid() {
		return nil, &ConfigError{Record: name, Diags: diags}
	}

	t := &Type{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  index,
		kwOnly: kwOnlyIndex(fields),
		opts:   opts,
		ov:     ov,
	}

	bindings := make([]template.Binding, len(fields))
	for i, f := range fields {
		bindings[i] = template.Binding{Name: f.Name, Default: f.Default, HasDefault: f.HasDefault}
	}

	n := len(fields)

	if ov.Construct == nil {
		kind := template.KindInit
		if opts.Has(options.Frozen) {
			kind = template.KindNew
		}

		t.construct = template.Specialize(template.Get(kind, n), bindings)
	}

	if ov.Repr == nil {
		kind := template.KindRepr
		if opts.Has(options.KeywordRepr) {
			kind = template.KindReprKeyword
		}

		t.repr = template.Specialize(template.Get(kind, n), bindings)
	}

	if ov.Equal == nil {
		t.equal = template.Specialize(template.Get(template.KindEqual, n), bindings)
	}

	if opts.Has(options.Iter) {
		t.iterate = template.Specialize(template.Get(template.KindIterate, n), bindings)
	}

	if opts.Has(options.Hash) {
		t.hash = template.Specialize(template.Get(template.KindHash, n), bindings)
	}

	return t, nil
}

// FromStruct synthesizes a record type from a struct prototype, resolving
// the field list with the reflection resolver. The prototype's embedded
// structs merge in place, most derived declaration winning; defaults come
// from `record:"default=..."` tags.
func FromStruct(prototype any, opts options.Set) (*Type, error) {
	rt := reflect.TypeOf(prototype)
	if rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}

	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, resolve.ErrNotStruct
	}

	resolved, err := resolve.Fields(rt)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, len(resolved))
	for i, f := range resolved {
		fields[i] = Field{Name: f.Name, Default: f.Default, HasDefault: f.HasDefault}
	}

	return Synthesize(rt.Name(), fields, opts, Overrides{})
}
