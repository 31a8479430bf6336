/*
Package tree provides a binary tree as a sealed sum type with two
variants, Leaf and Node, and operations written as variant matches. It
doubles as the worked example for the matcher: each operation is one
match with one case per variant.
*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/sutiialex/variant"
)

// tracer traces with key 'variant.tree'.
func tracer() tracing.Trace {
	return tracing.Select("variant.tree")
}

// Tree is a binary tree carrying values of type T in its leaves. The
// variant set is sealed: Leaf and Node are the only implementations.
type Tree[T any] interface {
	isTree()
	variant.Discriminated
}

// Leaf is a terminal tree carrying a single value.
type Leaf[T any] struct {
	Value T
}

func (Leaf[T]) isTree() {}

func (Leaf[T]) Discriminant() string { return "leaf" }

func (l Leaf[T]) String() string {
	return fmt.Sprintf("Leaf(%v)", l.Value)
}

// Node is an internal tree with two subtrees.
type Node[T any] struct {
	Left, Right Tree[T]
}

func (Node[T]) isTree() {}

func (Node[T]) Discriminant() string { return "node" }

func (n Node[T]) String() string {
	return fmt.Sprintf("Node(%v, %v)", n.Left, n.Right)
}

// L constructs a leaf.
func L[T any](v T) Tree[T] {
	return Leaf[T]{Value: v}
}

// N constructs an internal node over two subtrees.
func N[T any](left, right Tree[T]) Tree[T] {
	return Node[T]{Left: left, Right: right}
}

// Number constrains leaf values Sum can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Depth returns the number of levels of a tree; a single leaf has
// depth 1.
func Depth[T any](t Tree[T]) int {
	d := variant.MustMatch(t,
		variant.Of(func(Leaf[T]) int { return 1 }),
		variant.Of(func(n Node[T]) int {
			dl, dr := Depth(n.Left), Depth(n.Right)
			if dl > dr {
				return 1 + dl
			}
			return 1 + dr
		}),
	)
	tracer().Debugf("depth of %v = %d", t, d)
	return d
}

// Fold collapses a tree bottom-up: leaf maps each leaf value, node
// combines the results of the two subtrees.
func Fold[T, R any](t Tree[T], leaf func(T) R, node func(R, R) R) R {
	return variant.MustMatch(t,
		variant.Of(func(l Leaf[T]) R { return leaf(l.Value) }),
		variant.Of(func(n Node[T]) R {
			return node(Fold(n.Left, leaf, node), Fold(n.Right, leaf, node))
		}),
	)
}

// Leaves counts the leaves of a tree.
func Leaves[T any](t Tree[T]) int {
	return Fold(t,
		func(T) int { return 1 },
		func(l, r int) int { return l + r },
	)
}

// Sum adds up all leaf values.
func Sum[T Number](t Tree[T]) T {
	return Fold(t,
		variant.Identity[T],
		func(l, r T) T { return l + r },
	)
}
