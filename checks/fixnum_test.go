package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othiym23/relvar"
)

func TestParseFix(t *testing.T) {
	var parseTest = []struct {
		in     string
		prec   int
		expect string
		bad    bool
	}{
		{"12.0", 1, "12.0", false},
		{"12", 1, "12.0", false},
		{"17.5", 1, "17.5", false},
		{"-3.2", 1, "-3.2", false},
		{"+3.2", 1, "3.2", false},
		{".5", 1, "0.5", false},
		{"19", 0, "19", false},
		{"1.25", 2, "1.25", false},
		{"1.2", 2, "1.20", false},
		{"17.05", 1, "", true},
		{"", 1, "", true},
		{".", 1, "", true},
		{"twelve", 1, "", true},
		{"1.2.3", 1, "", true},
	}
	for _, tt := range parseTest {
		f, err := ParseFix(tt.in, tt.prec)
		if tt.bad {
			var ce *relvar.CheckError
			require.ErrorAs(t, err, &ce, "ParseFix(%q, %d)", tt.in, tt.prec)
			continue
		}
		require.NoError(t, err, "ParseFix(%q, %d)", tt.in, tt.prec)
		assert.Equal(t, tt.expect, f.String())
		assert.Equal(t, tt.prec, f.Precision())
	}
}

func TestFixFromFloat(t *testing.T) {
	f, err := FixFromFloat(12.0, 1)
	require.NoError(t, err)
	assert.Equal(t, "12.0", f.String())

	f, err = FixFromFloat(17.5, 1)
	require.NoError(t, err)
	assert.Equal(t, "17.5", f.String())

	// off the precision grid
	_, err = FixFromFloat(12.05, 1)
	var ce *relvar.CheckError
	require.ErrorAs(t, err, &ce)
}

func TestFixnumCheck(t *testing.T) {
	tc := Fixnum(1)
	assert.Equal(t, "Fixnum(1)", tc.Name())

	f, err := ParseFix("12.0", 1)
	require.NoError(t, err)
	ok, err := tc.Check(f)
	require.NoError(t, err)
	assert.True(t, ok)

	// right type, wrong precision
	f2, err := ParseFix("12.00", 2)
	require.NoError(t, err)
	ok, err = tc.Check(f2)
	require.NoError(t, err)
	assert.False(t, ok)

	// not a Fix at all
	_, err = tc.Check("12.0")
	var cerr *relvar.CheckError
	require.ErrorAs(t, err, &cerr)
}

// round-trip property: for admissible encoded values, write(read(x))
// reproduces the canonical encoding, and reading that back is a fixed point
func TestSerializeFixnumRoundTrip(t *testing.T) {
	read, write := SerializeFixnum(1)
	tc := Fixnum(1)

	for _, in := range []any{"12.0", "17.5", "-3.2", "12", 12.0, 12, int64(12)} {
		v, err := read(in, tc)
		require.NoError(t, err, "read(%v)", in)
		ok, err := tc.Check(v)
		require.NoError(t, err)
		require.True(t, ok, "read(%v) lands in the domain", in)

		out, err := write(v, tc)
		require.NoError(t, err)
		v2, err := read(out, tc)
		require.NoError(t, err)
		assert.Equal(t, v, v2, "write then read is a fixed point for %v", in)
	}

	// a Fix already in domain form passes through read untouched
	f, err := ParseFix("19.0", 1)
	require.NoError(t, err)
	v, err := read(f, tc)
	require.NoError(t, err)
	assert.Equal(t, f, v)

	_, err = read(struct{}{}, tc)
	var ce *relvar.CheckError
	require.ErrorAs(t, err, &ce)

	_, err = write("not a fix", tc)
	require.ErrorAs(t, err, &ce)
}
