// Package schema loads record declarations from YAML files.
//
// A schema file declares records by name, option list, and ordered fields
// with optional defaults:
//
//	records:
//	  - name: Point
//	    options: [frozen, keyword_repr]
//	    fields:
//	      - name: x
//	      - name: y
//	        default: 0
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"recordkit/internal/common"
	"recordkit/internal/diagnostic"
	"recordkit/options"
	"recordkit/record"
)

// File mirrors one YAML schema document.
type File struct {
	Records []Decl `yaml:"records"`
}

// Decl is one record declaration.
type Decl struct {
	Name    string      `yaml:"name"`
	Options []string    `yaml:"options"`
	Fields  []FieldDecl `yaml:"fields"`
}

// FieldDecl is one field of a declaration. Default stays a yaml.Node so an
// absent default is distinguishable from an explicit null.
type FieldDecl struct {
	Name     string    `yaml:"name"`
	Default  yaml.Node `yaml:"default"`
	Required bool      `yaml:"required"`
}

// Load reads and decodes a schema file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}

	return &f, nil
}

// Validate runs declaration-level checks without synthesizing anything.
func (f *File) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if common.IsEmpty(f.Records) {
		diags.AddWarning("empty-schema", "schema declares no records", "", "")
	}

	seen := map[string]struct{}{}
	for _, d := range f.Records {
		if d.Name == "" {
			diags.AddError("unnamed-record", "record needs a name", "", "")
			continue
		}

		if _, dup := seen[d.Name]; dup {
			diags.AddError("duplicate-record", "record declared twice", d.Name, "")
		}
		seen[d.Name] = struct{}{}

		if common.IsEmpty(d.Fields) {
			diags.AddError("no-fields", "record declares no fields", d.Name, "")
		}

		fields := map[string]struct{}{}
		for _, fd := range d.Fields {
			if fd.Name == "" {
				diags.AddError("unnamed-field", "field needs a name", d.Name, "")
				continue
			}

			if _, dup := fields[fd.Name]; dup {
				diags.AddError("duplicate-field", "field declared twice", d.Name, fd.Name)
			}
			fields[fd.Name] = struct{}{}

			if fd.Required && !fd.Default.IsZero() {
				diags.AddError("required-default", "required fields cannot carry a default", d.Name, fd.Name)
			}
		}

		if _, err := options.Parse(d.Options); err != nil {
			diags.AddError("bad-option", err.Error(), d.Name, "")
		}
	}

	return diags
}

// Build converts a declaration into synthesizer inputs.
func (d Decl) Build() ([]record.Field, options.Set, error) {
	opts, err := options.Parse(d.Options)
	if err != nil {
		return nil, options.None, fmt.Errorf("record %s: %w", d.Name, err)
	}

	fields := make([]record.Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		f := record.Field{Name: fd.Name}

		if !fd.Default.IsZero() {
			if fd.Required {
				return nil, options.None,
					fmt.Errorf("record %s, field %s: required fields cannot carry a default", d.Name, fd.Name)
			}

			var v any
			if err := fd.Default.Decode(&v); err != nil {
				return nil, options.None,
					fmt.Errorf("record %s, field %s: bad default: %w", d.Name, fd.Name, err)
			}

			f.Default, f.HasDefault = v, true
		}

		fields = append(fields, f)
	}

	return fields, opts, nil
}
