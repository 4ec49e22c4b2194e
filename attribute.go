// attribute contains the definitions of attributes: their names, domain
// checks, serializers, and defaults.  A heading is built out of these.

package relvar

// Attribute represents a particular attribute's name in a relvar heading.
type Attribute string

// TypeCheck decides whether a value belongs to an attribute's domain.  It is
// an interface rather than a bare function so that a check carries its own
// identity for error messages, and so that it can grow introspection for a
// data dictionary later.
//
// Check has three outcomes.  A (true, nil) return accepts the value.  A
// (false, nil) return rejects it, and the pipeline reports an
// InvalidValueError naming the attribute.  A non-nil error is inspected: if
// it is (or wraps) a *CheckError it is treated exactly like a rejection,
// carrying the check's message; any other error is a defect in the check
// itself and propagates to the caller unchanged.
//
// Checks must be pure functions of their argument.  A heading may be
// persisted, so a check that depends on captured mutable state cannot be
// reconstructed faithfully.  The package cannot enforce this; it is a caller
// obligation.
type TypeCheck interface {
	// Name identifies the check in error messages.
	Name() string

	// Check reports whether v is a member of the domain.
	Check(v any) (bool, error)
}

// SerialFunc translates a value between its external encoding and its domain
// form.  The pipeline always calls a SerialFunc with exactly the value and
// the attribute's TypeCheck, nothing else, so implementations must not
// depend on closure state.  The same purity obligation as TypeCheck applies.
type SerialFunc func(v any, tc TypeCheck) (any, error)

// AttributeDef describes one attribute of a heading under construction.
// Read and Write must be supplied together or not at all.  Default, when
// non-nil, is validated against Type (after Read coercion, if a serializer
// is present) when the heading is built, so a bad default surfaces before
// any tuple could use it.
type AttributeDef struct {
	Name    string
	Type    TypeCheck
	Read    SerialFunc
	Write   SerialFunc
	Default any
}

// attribute is the frozen form of an AttributeDef inside a heading.
type attribute struct {
	name   Attribute // canonical casing, as declared
	folded string
	check  TypeCheck
	read   SerialFunc
	write  SerialFunc

	// def is the default in domain form, already coerced and checked at
	// heading construction.  hasDef distinguishes "no default" from a
	// default that happens to be a zero value.
	def    any
	hasDef bool
}

type checkFunc struct {
	name string
	f    func(v any) (bool, error)
}

func (c checkFunc) Name() string              { return c.name }
func (c checkFunc) Check(v any) (bool, error) { return c.f(v) }

// CheckFunc adapts a bare predicate into a TypeCheck with the given name.
func CheckFunc(name string, f func(v any) (bool, error)) TypeCheck {
	return checkFunc{name, f}
}
