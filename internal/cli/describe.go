package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"recordkit/internal/schema"
	"recordkit/options"
	"recordkit/record"
)

// NewDescribeCommand creates the describe command: it synthesizes every
// record in a schema and prints the resulting surface.
func NewDescribeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <schema.yaml>",
		Short: "Synthesize every record in a schema and print its surface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(cmd.OutOrStdout(), args[0])
		},
	}
}

func describe(w io.Writer, path string) error {
	file, err := schema.Load(path)
	if err != nil {
		return err
	}

	if diags := file.Validate(); diags.HasErrors() {
		return errors.New(diags.Join())
	}

	for i, decl := range file.Records {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fields, opts, err := decl.Build()
		if err != nil {
			return err
		}

		typ, err := record.Synthesize(decl.Name, fields, opts, record.Overrides{})
		if err != nil {
			return err
		}

		slog.Debug("synthesized record", "name", typ.Name(), "fields", typ.NumFields())

		fmt.Fprintf(w, "record %s (options: %s)\n", typ.Name(), typ.Options())

		kw := typ.KwOnly()
		for j, name := range typ.Fields() {
			marker := "  "
			if j >= kw {
				marker = "* " // keyword-only
			}

			if f := fields[j]; f.HasDefault {
				fmt.Fprintf(w, "  %s%s = %v\n", marker, name, f.Default)
			} else {
				fmt.Fprintf(w, "  %s%s\n", marker, name)
			}
		}

		fmt.Fprintf(w, "  methods: %s\n", strings.Join(methodNames(typ), ", "))

		// A sample rendering is only possible when every field defaults.
		if sample, err := typ.Apply(nil, nil); err == nil {
			fmt.Fprintf(w, "  sample: %s\n", sample)
		}
	}

	return nil
}

func methodNames(t *record.Type) []string {
	ms := []string{"new", "repr", "equal"}

	if t.Options().Has(options.Iter) {
		ms = append(ms, "iter")
	}

	if t.Options().Has(options.Hash) {
		ms = append(ms, "hash")
	}

	return ms
}
