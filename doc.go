// Package relvar implements relation variables ("relvars") as defined by
// C. J. Date in his book "Database in Depth".  This package uses the same
// terminology.
//
// Basics
//
// A relvar is a named, typed collection of tuples.  Its type is a heading: a
// set of uniquely named attributes, each with a domain.  The body of a relvar
// is a set of tuples that conform to the heading.  Because relations are
// sets, the body is always distinct - adding a tuple that is already present
// changes nothing.  There are also no nulls.  If you need a type to represent
// a null, you'll have to add it in yourself, and the validation pipeline will
// still insist that every attribute has a value.
//
// This package is the schema-enforcement half of a relational system: it
// decides, for every candidate tuple, whether it is admissible, normalizes
// it (case-folded attribute names, defaulted attributes, domain-checked
// values), and round-trips values through serialize/deserialize functions.
// It is not a query engine.  There is no relational algebra here, no
// persistence, and no indexes.
//
// Attribute domains are represented by TypeCheck values: a name for error
// messages plus a single pure predicate.  Serializers are pairs of pure
// functions which translate between the external (typically string) encoding
// of a value and its domain form.  Both are required to be context-free so
// that a heading can itself be persisted in a data dictionary; the package
// only ever calls them with their declared arguments and never relies on
// captured state.
//
// Attribute names are identified case-insensitively.  Folding is performed
// with golang.org/x/text/cases, and the folding locale is explicit
// configuration on the relvar rather than ambient process state; see the
// Locale option.
//
// The checks subpackage contains example domain predicates and serializers
// for the suppliers-and-parts database used throughout Date's book.
package relvar

// variable naming conventions
//
// r, r1, r2, ... all represent relvars.
//
// h represents a heading, and a the attribute under consideration.
//
// tup, tup1, tup2, ... all represent tuples, either candidates on their way
// into the validation pipeline or validated tuples in a body.
//
// cand represents a raw candidate tuple as supplied by the caller, and cm
// its working form with case-folded keys.
