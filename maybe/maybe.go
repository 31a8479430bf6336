/*
Package maybe provides an option type: a Maybe is either Just a value or
Nothing. It helps with optional arguments, missing fields and partial
functions, replacing nil-pointer conventions with an explicit variant.

Matching on a Maybe uses a switch over its Matcher:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
	    // v is bound here
	case m.Nothing():
	}
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	OrElse(func() Maybe[T]) Maybe[T]
	Filter(func(T) bool) Maybe[T]
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPtr adapts a nilable pointer: nil becomes Nothing, otherwise the
// pointee is wrapped in Just.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) OrElse(f func() Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return f()
}

func (m maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.tag && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// Discriminant reports the variant of an optional value, "just" or
// "nothing". It makes Maybe values matchable with tag-discriminated
// variant cases.
func (m maybe[T]) Discriminant() string {
	if m.tag {
		return "just"
	}
	return "nothing"
}

// AndThen chains a partial function onto an optional value, collapsing
// nested Maybes.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to a present value; Nothing passes through unchanged.
// Unlike the method of the same name it may change the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first present value of xs, or Nothing.
func OneOf[T any](xs ...Maybe[T]) Maybe[T] {
	for _, x := range xs {
		if x.IsJust() {
			return x
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match a Maybe with a switch statement. A
// case method returns the matcher itself if its variant is present, nil
// otherwise; Just additionally binds the value through its pointer
// argument.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
