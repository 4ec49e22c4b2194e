// fixnum implements a fixed-point decimal domain: numbers with a declared
// number of digits after the decimal point, held exactly as scaled
// integers.  Date's parts have a WEIGHT attribute of this kind.

package checks

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/othiym23/relvar"
)

// Fix is a fixed-point decimal value: units scaled by 10^prec.  A Fix is a
// value type and is comparable, so tuples containing them dedup correctly.
type Fix struct {
	units int64
	prec  int
}

// Precision returns the number of digits after the decimal point.
func (f Fix) Precision() int { return f.prec }

// Float returns the value as a float64.  The conversion may round; the Fix
// itself stays exact.
func (f Fix) Float() float64 {
	return float64(f.units) / math.Pow10(f.prec)
}

// String formats the value canonically, always with exactly the declared
// number of fractional digits: Fix of 120 units at precision 1 is "12.0".
func (f Fix) String() string {
	if f.prec == 0 {
		return strconv.FormatInt(f.units, 10)
	}
	sign := ""
	units := f.units
	if units < 0 {
		sign = "-"
		units = -units
	}
	pow := int64(math.Pow10(f.prec))
	return fmt.Sprintf("%s%d.%0*d", sign, units/pow, f.prec, units%pow)
}

// ParseFix parses a decimal string into a Fix of the given precision.  The
// input may carry fewer fractional digits than the precision, but not more:
// "17" and "17.0" both parse at precision 1, "17.05" does not.
func ParseFix(s string, prec int) (Fix, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && len(frac) > prec {
		return Fix{}, relvar.Invalid("%q has more than %d fractional digits", s, prec)
	}
	neg := false
	switch {
	case strings.HasPrefix(whole, "-"):
		neg = true
		whole = whole[1:]
	case strings.HasPrefix(whole, "+"):
		whole = whole[1:]
	}
	if whole == "" && frac == "" {
		return Fix{}, relvar.Invalid("%q is not a number", s)
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Fix{}, relvar.Invalid("%q is not a number", s)
	}
	var fr int64
	if frac != "" {
		fr, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || fr < 0 {
			return Fix{}, relvar.Invalid("%q is not a number", s)
		}
	}
	// scale the fraction up to the full precision
	for i := len(frac); i < prec; i++ {
		fr *= 10
	}
	units := w*int64(math.Pow10(prec)) + fr
	if neg {
		units = -units
	}
	return Fix{units, prec}, nil
}

// FixFromFloat converts a float64 into a Fix of the given precision,
// rejecting values that do not land exactly on the precision grid; a
// candidate of 12.05 is not admissible at precision 1.
func FixFromFloat(x float64, prec int) (Fix, error) {
	scaled := x * math.Pow10(prec)
	units := math.Round(scaled)
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) || math.Abs(scaled-units) > 1e-9*math.Max(1, math.Abs(scaled)) {
		return Fix{}, relvar.Invalid("%v does not have %d-digit precision", x, prec)
	}
	return Fix{int64(units), prec}, nil
}

// Fixnum returns a check accepting Fix values of exactly the given
// precision.  Use it together with SerializeFixnum, whose read half
// produces the Fix domain values this check inspects.
func Fixnum(prec int) relvar.TypeCheck {
	name := fmt.Sprintf("Fixnum(%d)", prec)
	return relvar.CheckFunc(name, func(v any) (bool, error) {
		f, ok := v.(Fix)
		if !ok {
			return false, relvar.Invalid("%v is not a fixed-point number", v)
		}
		return f.Precision() == prec, nil
	})
}

// SerializeFixnum returns the read/write pair for a fixed-point attribute
// of the given precision.  Read accepts encoded strings, floats, integers,
// or a Fix already in domain form; write emits the canonical decimal
// string, the inverse of read.
func SerializeFixnum(prec int) (read, write relvar.SerialFunc) {
	read = func(v any, tc relvar.TypeCheck) (any, error) {
		switch x := v.(type) {
		case Fix:
			return x, nil
		case string:
			return ParseFix(x, prec)
		case float64:
			return FixFromFloat(x, prec)
		case float32:
			return FixFromFloat(float64(x), prec)
		case int:
			return Fix{int64(x) * int64(math.Pow10(prec)), prec}, nil
		case int64:
			return Fix{x * int64(math.Pow10(prec)), prec}, nil
		}
		return nil, relvar.Invalid("%v is not a fixed-point number", v)
	}
	write = func(v any, tc relvar.TypeCheck) (any, error) {
		f, ok := v.(Fix)
		if !ok {
			return nil, relvar.Invalid("%v is not a fixed-point number", v)
		}
		return f.String(), nil
	}
	return read, write
}
