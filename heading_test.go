package relvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// isString is a minimal domain check for exercising the core without
// pulling in the checks subpackage.
var isString = CheckFunc("String", func(v any) (bool, error) {
	_, ok := v.(string)
	return ok, nil
})

// test that heading construction rejects bad definitions with ConfigErrors
func TestHeadingConfigErrors(t *testing.T) {
	ident := func(v any, tc TypeCheck) (any, error) { return v, nil }

	var defTest = []struct {
		name string
		defs []AttributeDef
	}{
		{"empty name", []AttributeDef{
			{Name: "", Type: isString},
		}},
		{"no check", []AttributeDef{
			{Name: "City"},
		}},
		{"duplicate name", []AttributeDef{
			{Name: "City", Type: isString},
			{Name: "City", Type: isString},
		}},
		{"duplicate name under folding", []AttributeDef{
			{Name: "PNO", Type: isString},
			{Name: "pno", Type: isString},
		}},
		{"read without write", []AttributeDef{
			{Name: "City", Type: isString, Read: ident},
		}},
		{"write without read", []AttributeDef{
			{Name: "City", Type: isString, Write: ident},
		}},
		{"default fails check", []AttributeDef{
			{Name: "City", Type: isString, Default: 42},
		}},
	}
	for _, tt := range defTest {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs)
			var ce *ConfigError
			require.ErrorAs(t, err, &ce, "expected a ConfigError")
		})
	}
}

// test that a default passes through the attribute's serializer before its
// check, and that the coerced form is what gets substituted
func TestHeadingDefaultCoercion(t *testing.T) {
	isLen := CheckFunc("Len", func(v any) (bool, error) {
		_, ok := v.(int)
		return ok, nil
	})
	readLen := func(v any, tc TypeCheck) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, Invalid("%v is not a string", v)
		}
		return len(s), nil
	}
	writeLen := func(v any, tc TypeCheck) (any, error) { return v, nil }

	r, err := New([]AttributeDef{
		{Name: "Name", Type: isString},
		{Name: "NameLen", Type: isLen, Read: readLen, Write: writeLen, Default: "four"},
	})
	require.NoError(t, err)

	require.NoError(t, r.Add(map[string]any{"Name": "Smith"}))
	for tup := range r.Tuples() {
		v, ok := tup.Get("namelen")
		assert.True(t, ok)
		assert.Equal(t, 4, v)
	}
}

// test that the folding locale is explicit configuration: und folding
// equates ß with SS, and Turkish folding maps a dotless I
func TestHeadingLocaleFolding(t *testing.T) {
	r, err := New([]AttributeDef{
		{Name: "Straße", Type: isString},
	})
	require.NoError(t, err)
	require.NoError(t, r.Add(map[string]any{"STRASSE": "Unter den Linden"}))
	assert.Equal(t, 1, r.Card())

	tr, err := New([]AttributeDef{
		{Name: "KIMLIK", Type: isString},
	}, Locale(language.Turkish))
	require.NoError(t, err)
	require.NoError(t, tr.Add(map[string]any{"kımlık": "x"}))
	assert.Equal(t, 1, tr.Card())
}

func TestHeadingNames(t *testing.T) {
	r, err := New([]AttributeDef{
		{Name: "PNO", Type: isString},
		{Name: "PName", Type: isString},
		{Name: "City", Type: isString},
	})
	require.NoError(t, err)
	assert.Equal(t, []Attribute{"PNO", "PName", "City"}, r.Heading())
	assert.Equal(t, 3, r.Deg())
	assert.Equal(t, 0, r.Card())
}
