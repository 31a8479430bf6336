package variant

// --- Case ------------------------------------------------------------------

// Case associates one variant of a matched value with a handler producing
// a result of type R. Cases are constructed per call site with Of, Tag,
// When or Otherwise, and hold no state between calls.
type Case[R any] struct {
	matches func(any) bool
	invoke  func(any) R
}

// Of matches values whose runtime type is V and hands them, narrowed
// to V, to handler.
func Of[V, R any](handler func(V) R) Case[R] {
	return Case[R]{
		matches: func(v any) bool {
			_, ok := v.(V)
			return ok
		},
		invoke: func(v any) R {
			return handler(v.(V))
		},
	}
}

// When matches values of runtime type V for which pred holds. Predicates
// let cases structurally overlap, which makes case order significant.
func When[V, R any](pred func(V) bool, handler func(V) R) Case[R] {
	return Case[R]{
		matches: func(v any) bool {
			vv, ok := v.(V)
			return ok && pred(vv)
		},
		invoke: func(v any) R {
			return handler(v.(V))
		},
	}
}

// Otherwise matches any value. Used as the final case it is the default
// handler of a match; the matched value is not passed on.
func Otherwise[R any](handler func() R) Case[R] {
	return Case[R]{
		matches: func(any) bool { return true },
		invoke: func(any) R {
			return handler()
		},
	}
}

// --- Discriminated values --------------------------------------------------

// Discriminated is implemented by values which signal their variant with
// an explicit discriminator field rather than through their runtime type.
type Discriminated interface {
	Discriminant() string
}

// Tag matches Discriminated values of runtime type V whose discriminant
// equals tag.
func Tag[V, R any](tag string, handler func(V) R) Case[R] {
	return Case[R]{
		matches: func(v any) bool {
			d, ok := v.(Discriminated)
			if !ok || d.Discriminant() != tag {
				return false
			}
			_, ok = v.(V)
			return ok
		},
		invoke: func(v any) R {
			return handler(v.(V))
		},
	}
}
