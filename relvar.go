// relvar contains the relation variable itself: a frozen heading plus a
// body of validated tuples with set semantics.

package relvar

import (
	"iter"

	"golang.org/x/text/language"
)

// Relvar is a relation variable: one heading, fixed at construction, and a
// body of tuples conforming to it.  The body is a set - duplicates collapse
// - and it grows only through Add, which funnels every candidate through
// the validation pipeline.  The relvar is the sole owner of its body;
// callers only ever see read-only tuple views.
//
// A Relvar performs no synchronization of its own.  All operations are
// synchronous and run to completion; if the embedding application mutates a
// relvar from multiple goroutines it must serialize the calls itself.
type Relvar struct {
	heading *heading
	body    []Tuple
}

type config struct {
	tag language.Tag
}

// Option configures a relvar at construction.
type Option func(*config)

// Locale sets the locale used for case folding attribute names.  The
// default is language.Und, which selects locale-independent Unicode case
// folding.  The folding locale is part of the relvar's configuration, not
// ambient process state, so two relvars with different locales can coexist.
func Locale(tag language.Tag) Option {
	return func(c *config) { c.tag = tag }
}

// New creates a relvar from a sequence of attribute definitions.  The
// heading is built and frozen here; defaults are validated now rather than
// on first use.  The body starts empty.
func New(defs []AttributeDef, opts ...Option) (*Relvar, error) {
	var c config
	c.tag = language.Und
	for _, opt := range opts {
		opt(&c)
	}
	h, err := newHeading(defs, c.tag)
	if err != nil {
		return nil, err
	}
	return &Relvar{heading: h}, nil
}

// Add validates a candidate tuple against the relvar's heading and, on
// success, inserts the normalized tuple into the body.  The candidate is a
// map of attribute names (any casing) to values, or a struct whose exported
// fields supply them.  Re-adding a tuple already in the body is a no-op,
// not an error: the body is a set.
//
// On failure the error is one of the validation kinds in this package, or
// an unclassified defect from a caller-supplied check or serializer; either
// way the body is untouched.
func (r *Relvar) Add(cand any) error {
	tup, err := validate(r.heading, cand)
	if err != nil {
		return err
	}
	for i := range r.body {
		if r.body[i].Equal(tup) {
			return nil
		}
	}
	r.body = append(r.body, tup)
	return nil
}

// Heading returns the attribute names of the relvar in declaration order.
func (r *Relvar) Heading() []Attribute {
	return r.heading.Names()
}

// Deg returns the degree of the relvar.
func (r *Relvar) Deg() int {
	return r.heading.Degree()
}

// Card returns the cardinality of the relvar.
func (r *Relvar) Card() int {
	return len(r.body)
}

// Tuples returns a finite, restartable sequence over the body.  Each
// ranging over the sequence observes a snapshot of the body as of the call
// to Tuples; tuples added afterward do not appear.  Iteration allocates
// nothing per step and yields read-only views.
func (r *Relvar) Tuples() iter.Seq[Tuple] {
	snap := r.body[:len(r.body):len(r.body)]
	return func(yield func(Tuple) bool) {
		for _, tup := range snap {
			if !yield(tup) {
				return
			}
		}
	}
}

// TupleChan sends the body's tuples over the given channel and closes it
// when done.  The returned cancel channel stops the send early.  The
// snapshot of the body is taken synchronously before TupleChan returns, so
// later Adds do not leak into an iteration already underway.
func (r *Relvar) TupleChan(t chan<- Tuple) (cancel chan<- struct{}) {
	can := make(chan struct{})
	snap := r.body[:len(r.body):len(r.body)]
	go func() {
		defer close(t)
		for _, tup := range snap {
			select {
			case <-can:
				return
			case t <- tup:
			}
		}
	}()
	return can
}
