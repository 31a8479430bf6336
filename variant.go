/*
Package variant emulates sum types (discriminated unions) and pattern
matching in Go.

A sum-type value is exactly one of a fixed set of alternative shapes,
distinguished either by its runtime type or by an explicit discriminator
field. Match dispatches such a value against an ordered list of cases,
invoking the handler of the first case that accepts it:

	depth := variant.MustMatch(t,
	    variant.Of(func(l Leaf) int { return 1 }),
	    variant.Of(func(n Node) int { return 1 + maxDepth(n) }),
	    variant.Otherwise(variant.Const(-1)),
	)

Case order is declaration order. At most one handler is ever invoked per
call; later cases are not evaluated once a case has accepted the value.
Matching is a pure synchronous function without state of its own, so
concurrent calls on independent inputs need no coordination.
*/
package variant

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'variant'.
func tracer() tracing.Trace {
	return tracing.Select("variant")
}

// ErrNonExhaustive is returned by Match if none of the supplied cases
// accepts the value. Appending an Otherwise case makes a match total.
var ErrNonExhaustive = errors.New("non-exhaustive match")

// Match scans cases in declaration order and returns the result of the
// first case accepting v. Handlers of cases after the first hit are never
// invoked. If no case accepts v, Match returns the zero value of R
// together with ErrNonExhaustive.
func Match[R any](v any, cases ...Case[R]) (R, error) {
	for i, c := range cases {
		if c.matches(v) {
			tracer().Debugf("match: case %d of %d accepts %T", i+1, len(cases), v)
			return c.invoke(v), nil
		}
	}
	tracer().Debugf("match: no case accepts %T", v)
	var none R
	return none, ErrNonExhaustive
}

// MustMatch is like Match, but panics on a non-exhaustive match. It is
// intended for sealed variant sets where a miss would be a programming
// error.
func MustMatch[R any](v any, cases ...Case[R]) R {
	r, err := Match(v, cases...)
	if err != nil {
		panic(fmt.Sprintf("cannot match variant-case for %#v", v))
	}
	return r
}
