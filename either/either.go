/*
Package either provides a sum type with two alternatives. An Either is a
Left or a Right; by convention Right carries the "right" (expected)
value and Left the deviation.

	var l int
	var r string
	switch m := e.Match(); m {
	case m.Left(&l):
	    // l is bound here
	case m.Right(&r):
	}
*/
package either

// Either holds exactly one of a Left L or a Right R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
}

type either[L, R any] struct {
	discr bool // true for Right
	left  L
	right R
}

// Left injects a value into the left alternative.
func Left[R, L any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right injects a value into the right alternative.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{discr: true, right: r}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return !e.discr
}

func (e either[L, R]) IsRight() bool {
	return e.discr
}

// Discriminant reports the variant of an Either, "left" or "right".
func (e either[L, R]) Discriminant() string {
	if e.discr {
		return "right"
	}
	return "left"
}

// MapLeft applies f to a Left value; a Right passes through unchanged.
func MapLeft[L, R, T any](f func(L) T, e Either[L, R]) Either[T, R] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[R](f(l))
	case m.Right(&r):
	}
	return Right[T](r)
}

// MapRight applies f to a Right value; a Left passes through unchanged.
func MapRight[L, R, T any](f func(R) T, e Either[L, R]) Either[L, T] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
	case m.Right(&r):
		return Right[L](f(r))
	}
	return Left[T](l)
}

// Fold collapses an Either into a single value by applying the function
// for the alternative that is present.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// Swap exchanges the alternatives.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Right[R](l)
	case m.Right(&r):
	}
	return Left[L](r)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match an Either with a switch statement. A
// case method returns the matcher itself if its alternative is present,
// nil otherwise, binding the value through its pointer argument.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.discr {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.discr {
		*r = em.e.right
		return em
	}
	return nil
}
