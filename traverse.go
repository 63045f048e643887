package zcursor

// ForEach visits every element of a, in order, calling fn with each one. A
// visited element that is not explicitly consumed by fn is finished
// automatically before the next is requested, so fn may freely abandon
// elements it doesn't care about. Iteration stops at the first error,
// either from fn or from the underlying parse.
//
// ForEach, Fold and Find are duplicated per container type (Array, Object,
// MultiDocument) rather than generated from one declarative definition, since
// Go has no macros.
func ForEach(a *Array, fn func(v *Any) error) error {
	for {
		v, err := a.Next()
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
		if err := v.Finish(); err != nil {
			return err
		}
	}
}

// Fold threads an accumulator across every element of a.
func Fold[T any](a *Array, init T, fn func(acc T, v *Any) (T, error)) (T, error) {
	acc := init
	for {
		v, err := a.Next()
		if err != nil {
			return acc, err
		}
		if v == nil {
			return acc, nil
		}
		acc, err = fn(acc, v)
		if err != nil {
			return acc, err
		}
		if err := v.Finish(); err != nil {
			return acc, err
		}
	}
}

// Find returns the first element for which pred reports true, without
// finishing it (the caller takes ownership of the match); every element
// pred rejects is finished automatically. ok is false if no element matched.
func Find(a *Array, pred func(v *Any) (bool, error)) (match *Any, ok bool, err error) {
	for {
		v, err := a.Next()
		if err != nil {
			return nil, false, err
		}
		if v == nil {
			return nil, false, nil
		}
		matched, err := pred(v)
		if err != nil {
			return nil, false, err
		}
		if matched {
			return v, true, nil
		}
		if err := v.Finish(); err != nil {
			return nil, false, err
		}
	}
}

// ForEachMember visits every member of o, in order, calling fn with each
// name/value pair. As with ForEach, an unconsumed value is finished
// automatically between iterations.
func ForEachMember(o *Object, fn func(name ParsedString, v *Any) error) error {
	for {
		name, v, err := o.Next()
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		if err := fn(name, v); err != nil {
			return err
		}
		if err := v.Finish(); err != nil {
			return err
		}
	}
}

// FoldMembers threads an accumulator across every member of o.
func FoldMembers[T any](o *Object, init T, fn func(acc T, name ParsedString, v *Any) (T, error)) (T, error) {
	acc := init
	for {
		name, v, err := o.Next()
		if err != nil {
			return acc, err
		}
		if v == nil {
			return acc, nil
		}
		acc, err = fn(acc, name, v)
		if err != nil {
			return acc, err
		}
		if err := v.Finish(); err != nil {
			return acc, err
		}
	}
}

// FindMember returns the first member for which pred reports true, without
// finishing its value; every rejected member's value is finished
// automatically. ok is false if no member matched.
func FindMember(o *Object, pred func(name ParsedString, v *Any) (bool, error)) (name ParsedString, match *Any, ok bool, err error) {
	for {
		n, v, err := o.Next()
		if err != nil {
			return ParsedString{}, nil, false, err
		}
		if v == nil {
			return ParsedString{}, nil, false, nil
		}
		matched, err := pred(n, v)
		if err != nil {
			return ParsedString{}, nil, false, err
		}
		if matched {
			return n, v, true, nil
		}
		if err := v.Finish(); err != nil {
			return ParsedString{}, nil, false, err
		}
	}
}

// ForEachValue visits every value in a stream of whitespace-separated
// top-level JSON values, in order.
func ForEachValue(m *MultiDocument, fn func(v *Any) error) error {
	for {
		v, err := m.Next()
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
		if err := v.Finish(); err != nil {
			return err
		}
	}
}

// FoldValues threads an accumulator across every value in the stream.
func FoldValues[T any](m *MultiDocument, init T, fn func(acc T, v *Any) (T, error)) (T, error) {
	acc := init
	for {
		v, err := m.Next()
		if err != nil {
			return acc, err
		}
		if v == nil {
			return acc, nil
		}
		acc, err = fn(acc, v)
		if err != nil {
			return acc, err
		}
		if err := v.Finish(); err != nil {
			return acc, err
		}
	}
}

// FindValue returns the first value in the stream for which pred reports
// true, without finishing it. ok is false if no value matched.
func FindValue(m *MultiDocument, pred func(v *Any) (bool, error)) (match *Any, ok bool, err error) {
	for {
		v, err := m.Next()
		if err != nil {
			return nil, false, err
		}
		if v == nil {
			return nil, false, nil
		}
		matched, err := pred(v)
		if err != nil {
			return nil, false, err
		}
		if matched {
			return v, true, nil
		}
		if err := v.Finish(); err != nil {
			return nil, false, err
		}
	}
}
