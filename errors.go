// errors are the sealed set of validation failures the pipeline may raise.
// Anything a caller-supplied check or serializer returns that is not a
// *CheckError is a defect in that function and propagates unchanged; it must
// never be mistaken for a validation failure.

package relvar

import (
	"fmt"
	"reflect"
)

// CandidateError represents a candidate tuple of a kind the pipeline cannot
// interpret: not a map keyed by attribute names and not a struct.
type CandidateError struct {
	Found reflect.Type
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("relvar: expected candidate tuple map or struct, found '%v'", e.Found)
}

// ConfigError represents a heading that cannot be constructed: a duplicate
// attribute name, a missing domain check, half of a serializer pair, or a
// default that fails its own attribute's check.
type ConfigError struct {
	Attribute Attribute
	Msg       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("relvar: heading attribute %q: %s", string(e.Attribute), e.Msg)
}

// MissingAttributeError represents a candidate tuple that omits a required
// attribute with no default.
type MissingAttributeError struct {
	Attribute Attribute
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("relvar: candidate tuple is missing attribute %q", string(e.Attribute))
}

// NullValueError represents a candidate tuple with a nil value for an
// attribute.  Relvars do not support nullable attributes.
type NullValueError struct {
	Attribute Attribute
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("relvar: candidate tuple has a null value for attribute %q", string(e.Attribute))
}

// UnknownAttributeError represents a candidate tuple that supplies a key
// which is not in the heading.  A candidate must supply values for exactly
// the heading's attributes - no subset, no superset.
type UnknownAttributeError struct {
	Key string // the candidate key as the caller spelled it
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("relvar: candidate tuple has unknown attribute %q", e.Key)
}

// AmbiguousAttributeError represents two candidate keys that case-fold to
// the same attribute name, so the pipeline cannot tell which value was
// meant.
type AmbiguousAttributeError struct {
	Keys [2]string // the colliding candidate keys as the caller spelled them
}

func (e *AmbiguousAttributeError) Error() string {
	return fmt.Sprintf("relvar: candidate tuple keys %q and %q fold to the same attribute", e.Keys[0], e.Keys[1])
}

// InvalidValueError represents a value rejected by an attribute's domain
// check, either because the check returned false or because it (or the
// attribute's serializer) returned a *CheckError.
type InvalidValueError struct {
	Attribute Attribute
	Value     any
	Msg       string // empty when the check returned a plain false
}

func (e *InvalidValueError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("relvar: value %v is not valid for attribute %q", e.Value, string(e.Attribute))
	}
	return fmt.Sprintf("relvar: value %v is not valid for attribute %q: %s", e.Value, string(e.Attribute), e.Msg)
}

// CheckError is the one error kind a TypeCheck or SerialFunc may return to
// signal a validation failure rather than a defect.  The pipeline converts
// it into an InvalidValueError naming the attribute under consideration.
type CheckError struct {
	Msg string
}

func (e *CheckError) Error() string { return e.Msg }

// Invalid builds a *CheckError, for use inside checks and serializers.
func Invalid(format string, args ...any) *CheckError {
	return &CheckError{Msg: fmt.Sprintf(format, args...)}
}
