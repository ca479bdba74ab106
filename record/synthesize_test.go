package record_test

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordkit/options"
	"recordkit/record"
)

func fields(names ...string) []record.Field {
	fs := make([]record.Field, len(names))
	for i, n := range names {
		fs[i] = record.Field{Name: n}
	}

	return fs
}

func TestSynthesizeConfigErrors(t *testing.T) {
	iterate := func(r *record.Record) iter.Seq[any] {
		return func(yield func(any) bool) {}
	}
	hash := func(r *record.Record) uint64 { return 0 }
	setField := func(r *record.Record, name string, v any) (any, error) { return v, nil }

	tests := []struct {
		name     string
		fields   []record.Field
		opts     options.Set
		ov       record.Overrides
		wantCode string
	}{
		{"zero fields", nil, options.None, record.Overrides{}, "no-fields"},
		{"duplicate field", fields("a", "b", "a"), options.None, record.Overrides{}, "duplicate-field"},
		{"unnamed field", fields("a", ""), options.None, record.Overrides{}, "unnamed-field"},
		{"iter conflict", fields("a"), options.Iter, record.Overrides{Iterate: iterate}, "iter-conflict"},
		{"hash conflict", fields("a"), options.Hash, record.Overrides{Hash: hash}, "hash-conflict"},
		{"frozen interceptor", fields("a"), options.Frozen, record.Overrides{SetField: setField}, "frozen-interceptor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := record.Synthesize("Broken", tt.fields, tt.opts, tt.ov)
			require.Error(t, err)
			assert.Nil(t, typ, "a rejected declaration yields no type at all")

			var cfg *record.ConfigError
			require.ErrorAs(t, err, &cfg)

			found := false
			for _, d := range cfg.Diags.Errors {
				if d.Code == tt.wantCode {
					found = true
				}
			}
			assert.True(t, found, "expected diagnostic %s in %q", tt.wantCode, err)
		})
	}
}

func TestSynthesizeCollectsEveryProblem(t *testing.T) {
	_, err := record.Synthesize("Broken", nil, options.Iter, record.Overrides{
		Iterate: func(r *record.Record) iter.Seq[any] { return nil },
	})
	require.Error(t, err)

	var cfg *record.ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Len(t, cfg.Diags.Errors, 2, "zero fields and the iter conflict are both reported")
}

// Hand-written repr and equality win over synthesis without any error,
// exactly like any explicitly defined method would.
func TestOverridesWinSilently(t *testing.T) {
	typ, err := record.Synthesize("Token", fields("value"), options.None, record.Overrides{
		Repr:  func(r *record.Record) string { return "Token(<redacted>)" },
		Equal: func(a, b *record.Record) bool { return true },
	})
	require.NoError(t, err)

	a := typ.MustApply([]any{"s3cret"}, nil)
	b := typ.MustApply([]any{"other"}, nil)

	assert.Equal(t, "Token(<redacted>)", a.String())
	assert.True(t, a.Equal(b), "override declares all tokens equal")
	assert.True(t, a.CanEqual(b))
}

func TestConstructOverride(t *testing.T) {
	typ, err := record.Synthesize("Pair", fields("lo", "hi"), options.None, record.Overrides{
		Construct: func(r *record.Record, args []any, kwargs map[string]any) error {
			require.Len(t, args, 2)
			lo, hi := args[0].(int), args[1].(int)
			if lo > hi {
				lo, hi = hi, lo
			}

			require.NoError(t, r.Set("lo", lo))
			require.NoError(t, r.Set("hi", hi))

			return nil
		},
	})
	require.NoError(t, err)

	p, err := typ.New(9, 3)
	require.NoError(t, err)

	lo, err := p.Get("lo")
	require.NoError(t, err)
	assert.Equal(t, 3, lo)
}

func TestSetFieldInterceptor(t *testing.T) {
	typ, err := record.Synthesize("Doc", fields("title"), options.None, record.Overrides{
		SetField: func(r *record.Record, name string, v any) (any, error) {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s), nil
			}

			return v, nil
		},
	})
	require.NoError(t, err)

	d := typ.MustApply([]any{"raw"}, nil)
	require.NoError(t, d.Set("title", "  padded  "))

	title, err := d.Get("title")
	require.NoError(t, err)
	assert.Equal(t, "padded", title, "interceptor transforms ordinary writes")
}

func TestFromStruct(t *testing.T) {
	type Server struct {
		Host    string
		Port    int  `record:"default=8080"`
		Verbose bool `record:"default=false"`
	}

	typ, err := record.FromStruct(Server{}, options.KeywordRepr)
	require.NoError(t, err)

	assert.Equal(t, "Server", typ.Name())
	assert.Equal(t, []string{"Host", "Port", "Verbose"}, typ.Fields())

	s, err := typ.New("localhost")
	require.NoError(t, err)
	assert.Equal(t, `Server(Host="localhost", Port=8080, Verbose=false)`, s.String())
}

func TestFromStructRejectsNonStruct(t *testing.T) {
	_, err := record.FromStruct(42, options.None)
	assert.Error(t, err)
}
