// validate implements the tuple validation and coercion pipeline: the
// component that decides, for every candidate tuple, whether it is
// admissible under a heading, and normalizes it if so.

package relvar

import (
	"errors"
	"reflect"
	"sort"
)

// candEntry is one candidate attribute after key folding, remembering the
// caller's original spelling for error messages.
type candEntry struct {
	key string
	val any
}

// candidateMap turns a raw candidate into a working map keyed by case-folded
// attribute names.  A candidate is either a map keyed by string (or
// Attribute), or a struct whose exported field names are the attribute keys.
// Two candidate keys folding to the same name is an ambiguity: the pipeline
// cannot tell which value was meant.
func candidateMap(h *heading, cand any) (map[string]candEntry, error) {
	cm := make(map[string]candEntry, h.Degree())
	put := func(key string, val any) error {
		folded := h.fold(key)
		if prev, dup := cm[folded]; dup {
			return &AmbiguousAttributeError{[2]string{prev.key, key}}
		}
		cm[folded] = candEntry{key, val}
		return nil
	}

	switch c := cand.(type) {
	case map[string]any:
		// sort the keys so that a collision reports the same pair no matter
		// the map iteration order
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := put(k, c[k]); err != nil {
				return nil, err
			}
		}
		return cm, nil
	case map[Attribute]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := put(k, c[Attribute(k)]); err != nil {
				return nil, err
			}
		}
		return cm, nil
	}

	// fall back to treating a struct as a tuple, with its exported field
	// names as the attribute keys
	rc := reflect.ValueOf(cand)
	for rc.Kind() == reflect.Pointer {
		if rc.IsNil() {
			return nil, &CandidateError{rc.Type()}
		}
		rc = rc.Elem()
	}
	if rc.Kind() != reflect.Struct {
		return nil, &CandidateError{reflect.TypeOf(cand)}
	}
	e := rc.Type()
	for i := 0; i < e.NumField(); i++ {
		f := e.Field(i)
		if !f.IsExported() {
			continue
		}
		if err := put(f.Name, rc.Field(i).Interface()); err != nil {
			return nil, err
		}
	}
	return cm, nil
}

// isNull reports whether a resolved value is null for relvar purposes: the
// nil interface, or a typed nil pointer, map, slice, channel, or function
// smuggled in through a struct field.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// resolveValue runs one value through an attribute's serializer and domain
// check, returning it in domain form.  Raw attribute values are presumed to
// arrive in encoded form when the attribute has a serializer, so read runs
// before the check and the check sees the domain value.
func resolveValue(a *attribute, v any) (any, error) {
	if a.read != nil {
		raw := v
		var err error
		v, err = a.read(v, a.check)
		if err != nil {
			var ce *CheckError
			if errors.As(err, &ce) {
				return nil, &InvalidValueError{a.name, raw, ce.Msg}
			}
			// a defect in the caller's serializer, not a validation failure
			return nil, err
		}
	}
	ok, err := a.check.Check(v)
	if err != nil {
		var ce *CheckError
		if errors.As(err, &ce) {
			return nil, &InvalidValueError{a.name, v, ce.Msg}
		}
		return nil, err
	}
	if !ok {
		return nil, &InvalidValueError{Attribute: a.name, Value: v}
	}
	return v, nil
}

// validate resolves a candidate against a heading and produces a normalized
// tuple, or fails with the first error encountered.  Validation is
// all-or-nothing: no partial tuple is ever exposed.
func validate(h *heading, cand any) (Tuple, error) {
	cm, err := candidateMap(h, cand)
	if err != nil {
		return Tuple{}, err
	}

	values := make(map[string]any, h.Degree())
	for i := range h.attrs {
		a := &h.attrs[i]
		entry, present := cm[a.folded]
		if present {
			delete(cm, a.folded) // consume, so leftovers can be detected
		} else {
			if !a.hasDef {
				return Tuple{}, &MissingAttributeError{a.name}
			}
			// the default was coerced and checked when the heading was
			// built, so it is substituted in domain form directly
			values[a.folded] = a.def
			continue
		}
		if isNull(entry.val) {
			return Tuple{}, &NullValueError{a.name}
		}
		v, err := resolveValue(a, entry.val)
		if err != nil {
			return Tuple{}, err
		}
		values[a.folded] = v
	}

	if len(cm) > 0 {
		// report a stable choice among the leftovers
		leftover := make([]string, 0, len(cm))
		for _, entry := range cm {
			leftover = append(leftover, entry.key)
		}
		sort.Strings(leftover)
		return Tuple{}, &UnknownAttributeError{leftover[0]}
	}

	return Tuple{heading: h, values: values}, nil
}
