// heading deals with the construction of headings: the frozen set of
// attributes that types a relvar.

package relvar

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// heading is the type of a relvar: a set of uniquely named attributes.  The
// declaration order of the attributes is retained, but only for display;
// a heading is semantically a set, and every subset of a heading is itself
// a valid heading.  A heading is frozen once built and is never modified by
// any operation on a relvar.
type heading struct {
	attrs []attribute
	index map[string]int // folded name -> position in attrs
	tag   language.Tag
}

// fold normalizes an attribute name for identity comparison.  All name
// resolution in the package goes through here: heading construction,
// candidate key resolution, and tuple lookup.  For the und tag this is
// Unicode case folding; for a specific locale it is that locale's lowercase
// mapping, so that e.g. Turkish dotted and dotless i behave as that locale
// expects.
func (h *heading) fold(s string) string {
	if h.tag == language.Und {
		return cases.Fold().String(s)
	}
	return cases.Lower(h.tag).String(s)
}

// newHeading builds and freezes a heading from attribute definitions.
// All failures here are ConfigErrors: this is schema definition going
// wrong, not data.
func newHeading(defs []AttributeDef, tag language.Tag) (*heading, error) {
	h := &heading{
		attrs: make([]attribute, 0, len(defs)),
		index: make(map[string]int, len(defs)),
		tag:   tag,
	}
	for _, def := range defs {
		name := Attribute(def.Name)
		if def.Name == "" {
			return nil, &ConfigError{name, "empty attribute name"}
		}
		if def.Type == nil {
			return nil, &ConfigError{name, "no domain check"}
		}
		if (def.Read == nil) != (def.Write == nil) {
			return nil, &ConfigError{name, "serializer requires both read and write"}
		}
		folded := h.fold(def.Name)
		if _, dup := h.index[folded]; dup {
			return nil, &ConfigError{name, "duplicate attribute name"}
		}
		a := attribute{
			name:   name,
			folded: folded,
			check:  def.Type,
			read:   def.Read,
			write:  def.Write,
		}
		if def.Default != nil {
			// a bad default has to surface no later than the first add that
			// would use it; validating here is strictly earlier, and because
			// read and check are pure the coerced result can be stored and
			// reused on every substitution.
			v, err := resolveValue(&a, def.Default)
			if err != nil {
				return nil, &ConfigError{name, "bad default: " + err.Error()}
			}
			a.def = v
			a.hasDef = true
		}
		h.index[folded] = len(h.attrs)
		h.attrs = append(h.attrs, a)
	}
	return h, nil
}

// Names returns the attribute names in declaration order.  The order is a
// display convenience only; the heading itself is a set.
func (h *heading) Names() []Attribute {
	names := make([]Attribute, len(h.attrs))
	for i, a := range h.attrs {
		names[i] = a.name
	}
	return names
}

// Degree returns the number of attributes in the heading.
func (h *heading) Degree() int {
	return len(h.attrs)
}

// attr looks up an attribute by any case variant of its name.
func (h *heading) attr(name string) (*attribute, bool) {
	i, ok := h.index[h.fold(name)]
	if !ok {
		return nil, false
	}
	return &h.attrs[i], true
}
