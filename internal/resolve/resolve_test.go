package resolve

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meta struct {
	ID   string
	Note string `record:"default=none"`
}

type document struct {
	meta
	Title string
	Pages int    `record:"default=1"`
	Note  string `record:"default=override"`
	cache string // unexported, skipped by resolution
	Tmp   string `record:"-"`
}

func TestFieldsEmbeddedMerge(t *testing.T) {
	fs, err := Fields(reflect.TypeOf(document{}))
	require.NoError(t, err)

	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}

	// Embedded meta expands in place; Note keeps its first-seen position
	// but the outer declaration's default wins.
	assert.Equal(t, []string{"ID", "Note", "Title", "Pages"}, names)

	assert.False(t, fs[0].HasDefault)
	assert.Equal(t, "override", fs[1].Default)
	assert.True(t, fs[1].HasDefault)
	assert.False(t, fs[2].HasDefault)
	assert.Equal(t, 1, fs[3].Default)
}

func TestFieldsEmbeddedPointer(t *testing.T) {
	type inner struct{ A int }
	type outer struct {
		*inner
		B int
	}

	fs, err := Fields(reflect.TypeOf(outer{}))
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "A", fs[0].Name)
	assert.Equal(t, "B", fs[1].Name)
}

func TestFieldsDefaultKinds(t *testing.T) {
	type all struct {
		S string  `record:"default=hello"`
		B bool    `record:"default=true"`
		I int32   `record:"default=-7"`
		U uint16  `record:"default=42"`
		F float64 `record:"default=2.5"`
	}

	fs, err := Fields(reflect.TypeOf(all{}))
	require.NoError(t, err)
	require.Len(t, fs, 5)

	assert.Equal(t, "hello", fs[0].Default)
	assert.Equal(t, true, fs[1].Default)
	assert.Equal(t, int32(-7), fs[2].Default, "defaults carry the field's own type")
	assert.Equal(t, uint16(42), fs[3].Default)
	assert.Equal(t, 2.5, fs[4].Default)
}

func TestFieldsTagErrors(t *testing.T) {
	type badLiteral struct {
		N int `record:"default=xyz"`
	}
	type badKind struct {
		M map[string]int `record:"default=x"`
	}
	type requiredDefault struct {
		X int `record:"required,default=1"`
	}
	type unknownDirective struct {
		X int `record:"frobnicate"`
	}

	for name, typ := range map[string]reflect.Type{
		"bad literal":       reflect.TypeOf(badLiteral{}),
		"unsupported kind":  reflect.TypeOf(badKind{}),
		"required+default":  reflect.TypeOf(requiredDefault{}),
		"unknown directive": reflect.TypeOf(unknownDirective{}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Fields(typ)
			assert.Error(t, err)
		})
	}
}

func TestFieldsRequiredNeverDefaulted(t *testing.T) {
	type pinned struct {
		X int `record:"required"`
	}

	fs, err := Fields(reflect.TypeOf(pinned{}))
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.False(t, fs[0].HasDefault)
}

func TestFieldsRejectsNonStruct(t *testing.T) {
	_, err := Fields(reflect.TypeOf(3))
	assert.ErrorIs(t, err, ErrNotStruct)

	_, err = Fields(nil)
	assert.ErrorIs(t, err, ErrNotStruct)
}
