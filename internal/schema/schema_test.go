package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordkit/options"
)

func writeSchema(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestLoadAndBuild(t *testing.T) {
	path := writeSchema(t, `
records:
  - name: Server
    options: [frozen, keyword_repr]
    fields:
      - name: host
      - name: port
        default: 8080
      - name: tls
        default: false
`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Records, 1)

	diags := file.Validate()
	assert.True(t, diags.IsValid())

	fields, opts, err := file.Records[0].Build()
	require.NoError(t, err)

	assert.True(t, opts.Has(options.Frozen))
	assert.True(t, opts.Has(options.KeywordRepr))
	assert.False(t, opts.Has(options.Iter))

	require.Len(t, fields, 3)
	assert.Equal(t, "host", fields[0].Name)
	assert.False(t, fields[0].HasDefault)
	assert.Equal(t, 8080, fields[1].Default, "yaml integers decode as int")
	assert.Equal(t, false, fields[2].Default)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
	}{
		{
			"duplicate record",
			"records:\n  - name: A\n    fields: [{name: x}]\n  - name: A\n    fields: [{name: x}]\n",
			"duplicate-record",
		},
		{
			"no fields",
			"records:\n  - name: A\n",
			"no-fields",
		},
		{
			"duplicate field",
			"records:\n  - name: A\n    fields: [{name: x}, {name: x}]\n",
			"duplicate-field",
		},
		{
			"unknown option",
			"records:\n  - name: A\n    options: [sparkly]\n    fields: [{name: x}]\n",
			"bad-option",
		},
		{
			"required with default",
			"records:\n  - name: A\n    fields: [{name: x, required: true, default: 1}]\n",
			"required-default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Load(writeSchema(t, tt.text))
			require.NoError(t, err)

			diags := file.Validate()
			require.True(t, diags.HasErrors())

			found := false
			for _, d := range diags.Errors {
				if d.Code == tt.wantCode {
					found = true
				}
			}
			assert.True(t, found, "expected %s in %s", tt.wantCode, diags.Join())
		})
	}
}

func TestValidateEmptySchemaWarns(t *testing.T) {
	file, err := Load(writeSchema(t, "records: []\n"))
	require.NoError(t, err)

	diags := file.Validate()
	assert.True(t, diags.IsValid())
	assert.Len(t, diags.Warnings, 1)
}
