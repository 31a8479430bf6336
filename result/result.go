/*
Package result provides a Result type for computations that may fail: a
Result is either Ok with a value or Err with an error. It adapts Go's
(value, error) return convention to a sum type that can be mapped,
chained and pattern-matched:

	var v int
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
	    // v is bound here
	case m.Err(&err):
	}
*/
package result

import "github.com/sutiialex/variant/maybe"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err yields Ok of the zero value.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of adapts an idiomatic Go return pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Discriminant reports the variant of a result, "ok" or "err".
func (r result[T]) Discriminant() string {
	if r.err == nil {
		return "ok"
	}
	return "err"
}

// Map applies f to a successful value; an Err passes through unchanged.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

// MapErr applies f to the error of a failed result; an Ok passes through
// unchanged.
func MapErr[T any](f func(error) error, x Result[T]) Result[T] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
		return Err[T](f(err))
	}
	return x
}

// AndThen chains a fallible function onto a successful value; the first
// Err short-circuits the chain.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// ToMaybe forgets the error: Ok becomes Just, Err becomes Nothing.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// FromMaybe supplies the error a Nothing stands for.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match a Result with a switch statement. A
// case method returns the matcher itself if its variant is present, nil
// otherwise, binding the value or error through its pointer argument.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
