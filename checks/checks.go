// Package checks contains example domain checks and serializers for use
// with relvar headings, drawn from the suppliers-and-parts database in
// C. J. Date's "Database in Depth".  They double as a demonstration of the
// contract domain packages have to satisfy: every check and serializer here
// is a pure, context-free function, so a heading built from them can be
// persisted in a data dictionary and reconstructed.
package checks

import (
	"regexp"

	"github.com/othiym23/relvar"
)

// String accepts any Go string.
var String = relvar.CheckFunc("String", func(v any) (bool, error) {
	_, ok := v.(string)
	return ok, nil
})

// the part and supplier number formats from Date's sample data: a leading
// P or S followed by digits, no leading zero
var (
	pnoRE = regexp.MustCompile(`^P[1-9][0-9]*$`)
	snoRE = regexp.MustCompile(`^S[1-9][0-9]*$`)
)

// PNO accepts part numbers of the form "P1", "P2", ...
var PNO = relvar.CheckFunc("PNO", func(v any) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, relvar.Invalid("part number %v is not a string", v)
	}
	return pnoRE.MatchString(s), nil
})

// SNO accepts supplier numbers of the form "S1", "S2", ...
var SNO = relvar.CheckFunc("SNO", func(v any) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, relvar.Invalid("supplier number %v is not a string", v)
	}
	return snoRE.MatchString(s), nil
})

// Color accepts the part colors that appear in Date's sample data.
var Color = relvar.CheckFunc("Color", func(v any) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, relvar.Invalid("color %v is not a string", v)
	}
	switch s {
	case "Red", "Green", "Blue":
		return true, nil
	}
	return false, nil
})
