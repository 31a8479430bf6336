package variant_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sutiialex/variant"
)

type leaf struct {
	value int
}

type internal struct {
	left, right any
}

func depth(v any) int {
	return variant.MustMatch(v,
		variant.Of(func(l leaf) int { return 1 }),
		variant.Of(func(n internal) int {
			dl, dr := depth(n.left), depth(n.right)
			if dl > dr {
				return 1 + dl
			}
			return 1 + dr
		}),
	)
}

func TestMatchFirstCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	calls := 0
	r, err := variant.Match(leaf{7},
		variant.Of(func(l leaf) int {
			calls++
			return l.value
		}),
		variant.Of(func(n internal) int {
			t.Error("internal-handler invoked for a leaf")
			return 0
		}),
	)
	if err != nil {
		t.Fatalf("expected match on leaf to succeed, got %v", err)
	}
	if r != 7 {
		t.Errorf("expected leaf-handler to return 7, returned %d", r)
	}
	if calls != 1 {
		t.Errorf("expected exactly one handler invocation, counted %d", calls)
	}
}

func TestMatchShortCircuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	// Two overlapping cases: both predicates accept 7, only the first
	// may run.
	r, err := variant.Match[string](7,
		variant.When(func(n int) bool { return n > 0 }, func(n int) string {
			return "positive"
		}),
		variant.When(func(n int) bool { return n == 7 }, func(n int) string {
			t.Error("second overlapping case invoked")
			return "seven"
		}),
	)
	if err != nil {
		t.Fatalf("expected overlapping match to succeed, got %v", err)
	}
	if r != "positive" {
		t.Errorf(`expected first case to win with "positive", got %q`, r)
	}
}

func TestMatchOtherwise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	// A variant no case is registered for falls through to the default.
	r, err := variant.Match("unregistered",
		variant.Of(func(l leaf) int { return l.value }),
		variant.Otherwise(variant.Const(-1)),
	)
	if err != nil {
		t.Fatalf("expected default case to fire, got %v", err)
	}
	if r != -1 {
		t.Errorf("expected default to return -1, returned %d", r)
	}
}

func TestMatchNonExhaustive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	_, err := variant.Match("unregistered",
		variant.Of(func(l leaf) int { return l.value }),
	)
	if !errors.Is(err, variant.ErrNonExhaustive) {
		t.Errorf("expected ErrNonExhaustive, got %v", err)
	}
}

func TestMustMatchPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("expected MustMatch without matching case to panic, didn't")
		}
	}()
	variant.MustMatch("unregistered",
		variant.Of(func(l leaf) int { return l.value }),
	)
}

func TestMatchDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	cases := []variant.Case[int]{
		variant.Of(func(l leaf) int { return l.value * 2 }),
		variant.Otherwise(variant.Const(0)),
	}
	first, err1 := variant.Match[int](leaf{21}, cases...)
	second, err2 := variant.Match[int](leaf{21}, cases...)
	if err1 != nil || err2 != nil {
		t.Fatalf("expected repeated matches to succeed, got %v / %v", err1, err2)
	}
	if first != second || first != 42 {
		t.Errorf("expected repeated matches to agree on 42, got %d and %d", first, second)
	}
}

func TestMatchTreeDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variant")
	defer teardown()
	//
	tr := internal{leaf{1}, internal{leaf{2}, leaf{3}}}
	if d := depth(tr); d != 3 {
		t.Errorf("expected depth of example tree to be 3, is %d", d)
	}
}
