// Package resolve extracts ordered field lists from struct prototypes.
//
// It is the glue between Go struct declarations and the synthesis engine:
// embedded structs are flattened in place (the ancestry merge), unexported
// and opted-out fields are skipped, and default values are read from
// `record` struct tags.
//
// Tag grammar, comma-separated:
//   - `record:"-"`            exclude the field
//   - `record:"default=..."`  default value, parsed against the field kind
//   - `record:"required"`     never defaulted, even by a later declaration
package resolve

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrNotStruct  = errors.New("record fields can only be resolved from a struct type")
	ErrBadDefault = errors.New("cannot parse default value")
)

// Field is a resolved record field: name plus optional default value.
type Field struct {
	Name       string
	Default    any
	HasDefault bool
}

// Fields extracts the ordered field list from a struct type. Embedded
// structs expand in place; on a name collision the outermost declaration
// wins while the first-seen position is kept.
func Fields(t reflect.Type) ([]Field, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrNotStruct, t)
	}

	w := walker{byName: map[string]Field{}, depth: map[string]int{}}
	if err := w.walk(t, 0); err != nil {
		return nil, err
	}

	res := make([]Field, len(w.order))
	for i, name := range w.order {
		res[i] = w.byName[name]
	}

	return res, nil
}

type walker struct {
	order  []string
	byName map[string]Field
	depth  map[string]int
}

func (w *walker) walk(t reflect.Type, level int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		// Embedded ancestor: expand its fields in place, one level deeper.
		if sf.Anonymous {
			et := sf.Type
			if et.Kind() == reflect.Ptr {
				et = et.Elem()
			}

			if et.Kind() == reflect.Struct {
				if err := w.walk(et, level+1); err != nil {
					return err
				}

				continue
			}
		}

		if sf.PkgPath != "" { // unexported
			continue
		}

		tag := sf.Tag.Get("record")
		if tag == "-" {
			continue
		}

		f, err := fieldFromTag(sf, tag)
		if err != nil {
			return err
		}

		if prev, seen := w.depth[f.Name]; seen {
			// Most derived declaration wins, first-seen position is kept.
			if level < prev {
				w.byName[f.Name] = f
				w.depth[f.Name] = level
			}

			continue
		}

		w.order = append(w.order, f.Name)
		w.byName[f.Name] = f
		w.depth[f.Name] = level
	}

	return nil
}

func fieldFromTag(sf reflect.StructField, tag string) (Field, error) {
	f := Field{Name: sf.Name}

	required := false
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		switch {
		case part == "":
		case part == "required":
			required = true
		case strings.HasPrefix(part, "default="):
			def, err := parseDefault(sf.Type, strings.TrimPrefix(part, "default="))
			if err != nil {
				return Field{}, fmt.Errorf("field %s: %w", sf.Name, err)
			}

			f.Default = def
			f.HasDefault = true
		default:
			return Field{}, fmt.Errorf("field %s: unknown record tag directive %q", sf.Name, part)
		}
	}

	if required && f.HasDefault {
		return Field{}, fmt.Errorf("field %s: required fields cannot carry a default", sf.Name)
	}

	return f, nil
}

// parseDefault converts the tag literal into a value of the field's own
// type, so a defaulted field holds exactly what an assignment would.
func parseDefault(t reflect.Type, raw string) (any, error) {
	v := reflect.New(t).Elem()

	switch t.Kind() {
	default:
		return nil, fmt.Errorf("%w: defaults are not supported for %s fields", ErrBadDefault, t.Kind())

	case reflect.String:
		v.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadDefault, raw, err)
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadDefault, raw, err)
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadDefault, raw, err)
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadDefault, raw, err)
		}
		v.SetFloat(n)
	}

	return v.Interface(), nil
}
