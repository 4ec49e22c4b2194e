// tuple contains the definition of validated tuples and their read-only
// view: case-insensitive lookup, value identity, and serialization back to
// an external representation.

package relvar

import (
	"errors"
	"reflect"
)

// Tuple is one validated, fully populated row of a relvar's body.  Tuples
// are created only by the validation pipeline and are never modified
// afterward.  The key set of a tuple is exactly its heading's attribute
// set, every value is in domain form, and none of them is null.
//
// Identity is by value: two tuples with equal normalized content are
// interchangeable.
type Tuple struct {
	heading *heading
	values  map[string]any // keyed by folded attribute name
}

// Get returns the value of the named attribute.  Lookup is
// case-insensitive, under the same folding as the heading: "PNO", "pno",
// and "Pno" all resolve to the same attribute.
func (tup Tuple) Get(name string) (any, bool) {
	v, ok := tup.values[tup.heading.fold(name)]
	return v, ok
}

// Names returns the attribute names of the tuple in the heading's
// declaration order, with the heading's canonical casing.
func (tup Tuple) Names() []Attribute {
	return tup.heading.Names()
}

// Degree returns the number of attributes in the tuple.
func (tup Tuple) Degree() int {
	return len(tup.values)
}

// Equal reports whether two tuples have the same normalized content: the
// same folded attribute names and, attribute for attribute, equal values.
func (tup Tuple) Equal(tup2 Tuple) bool {
	if len(tup.values) != len(tup2.values) {
		return false
	}
	for folded, v := range tup.values {
		v2, ok := tup2.values[folded]
		if !ok || !reflect.DeepEqual(v, v2) {
			return false
		}
	}
	return true
}

// External serializes the tuple for storage or transmission.  Each value is
// passed through its attribute's write function where one is defined, and
// carried over untouched otherwise.  The returned map is keyed by the
// heading's canonical attribute casing and is a fresh copy; the tuple
// itself is not exposed.
//
// A *CheckError from a write function becomes an InvalidValueError naming
// the attribute; any other error is a defect in the serializer and
// propagates unchanged.
func (tup Tuple) External() (map[string]any, error) {
	out := make(map[string]any, len(tup.values))
	for i := range tup.heading.attrs {
		a := &tup.heading.attrs[i]
		v := tup.values[a.folded]
		if a.write != nil {
			var err error
			v, err = a.write(v, a.check)
			if err != nil {
				var ce *CheckError
				if errors.As(err, &ce) {
					return nil, &InvalidValueError{a.name, tup.values[a.folded], ce.Msg}
				}
				return nil, err
			}
		}
		out[string(a.name)] = v
	}
	return out, nil
}
