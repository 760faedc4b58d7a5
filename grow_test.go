package segtree

import (
	"iter"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree/monoid"
)

func cumSum(s, e int) int {
	return (e - s + 1) * (s + e) / 2
}

func newSumTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree, err := New(Config[int]{Monoid: monoid.Sum[int]{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func TestPush(t *testing.T) {
	prevTracer := gtrace.CoreTracer
	defer func() { gtrace.CoreTracer = prevTracer }()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := newSumTree(t)
	for i := range 1023 {
		tree.Push(i)
		if got := tree.Combine(All()); got != cumSum(0, i) {
			t.Fatalf("after push #%d: Combine(All) = %d, want %d", i, got, cumSum(0, i))
		}
		if tree.Len() != i+1 {
			t.Fatalf("after push #%d: Len() = %d", i, tree.Len())
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after push #%d: %v", i, err)
		}
	}
	if len(tree.tree) != 2048 {
		t.Fatalf("expected capacity 2048 for 1023 items, got %d", len(tree.tree))
	}
}

func TestPushMatchesConstruct(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		data[i] = (i*37)%23 - 11
	}
	built := newTree(t, Monoid[int](monoid.Sum[int]{}), data)
	pushed := newSumTree(t)
	for _, x := range data {
		pushed.Push(x)
	}
	if !slices.Equal(built.tree, pushed.tree) {
		t.Fatalf("pushed tree differs from constructed tree")
	}
	for s := 0; s <= len(data); s += 7 {
		for e := s; e <= len(data); e += 5 {
			if a, b := built.Combine(Span(s, e)), pushed.Combine(Span(s, e)); a != b {
				t.Fatalf("Combine(%d..%d): constructed=%d pushed=%d", s, e, a, b)
			}
		}
	}
}

func TestExtend(t *testing.T) {
	prevTracer := gtrace.CoreTracer
	defer func() { gtrace.CoreTracer = prevTracer }()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	span := func(from, to int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := from; i < to; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}
	tree := newSumTree(t)
	bounds := []int{0, 1, 10, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}
	for k := 1; k < len(bounds); k++ {
		tree.Extend(span(bounds[k-1], bounds[k]))
		if got, want := tree.Combine(All()), cumSum(0, bounds[k]-1); got != want {
			t.Fatalf("after extending to %d: Combine(All) = %d, want %d", bounds[k], got, want)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after extending to %d: %v", bounds[k], err)
		}
	}
	tree.ExtendFromSlice([]int{1000, 1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009})
	if got, want := tree.Combine(All()), cumSum(0, 1009); got != want {
		t.Fatalf("Combine(All) = %d, want %d", got, want)
	}
	if !slices.Equal(tree.Items(), slices.Collect(span(0, 1010))) {
		t.Fatalf("items are out of order after extending")
	}
}

func TestExtendBulkAndPushModes(t *testing.T) {
	tree := newTree(t, Monoid[int](monoid.Sum[int]{}), []int{1, 2, 3})
	// fits into capacity 8: pushed one by one
	tree.ExtendFromSlice([]int{4})
	if len(tree.tree) != 8 || tree.Len() != 4 {
		t.Fatalf("unexpected state after small extend: cap=%d len=%d", len(tree.tree), tree.Len())
	}
	// exceeds capacity: one rebuild
	tree.ExtendFromSlice([]int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17})
	if len(tree.tree) != 64 || tree.Len() != 17 {
		t.Fatalf("unexpected state after bulk extend: cap=%d len=%d", len(tree.tree), tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree does not validate: %v", err)
	}
	if got := tree.Combine(All()); got != cumSum(1, 17) {
		t.Fatalf("Combine(All) = %d, want %d", got, cumSum(1, 17))
	}
}

func TestExtendNPadsWithZero(t *testing.T) {
	tree := newTree(t, Monoid[int](monoid.Sum[int]{}), []int{1, 2})
	tree.ExtendN(4, slices.Values([]int{3}))
	if !slices.Equal(tree.Items(), []int{1, 2, 3, 0, 0, 0}) {
		t.Fatalf("unexpected items %v", tree.Items())
	}
	tree.ExtendN(1, slices.Values([]int{4, 5, 6}))
	if !slices.Equal(tree.Items(), []int{1, 2, 3, 0, 0, 0, 4}) {
		t.Fatalf("unexpected items %v", tree.Items())
	}
	tree.ExtendN(0, nil)
	tree.Extend(nil)
	if tree.Len() != 7 {
		t.Fatalf("empty extensions changed the length to %d", tree.Len())
	}
}

func TestGrowNeverTruncates(t *testing.T) {
	tree := newTree(t, Monoid[int](monoid.Sum[int]{}), []int{1, 2, 3})
	tree.Grow(2)
	if tree.Len() != 3 {
		t.Fatalf("Grow(2) truncated to %d", tree.Len())
	}
	tree.Grow(4)
	if tree.Len() != 4 || len(tree.tree) != 8 {
		t.Fatalf("unexpected state after Grow(4): cap=%d len=%d", len(tree.tree), tree.Len())
	}
	tree.Grow(9)
	if tree.Len() != 9 || len(tree.tree) != 32 {
		t.Fatalf("unexpected state after Grow(9): cap=%d len=%d", len(tree.tree), tree.Len())
	}
	if !slices.Equal(tree.Items(), []int{1, 2, 3, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("unexpected items %v", tree.Items())
	}
	mustUpdate(t, tree, 8, 10)
	expectCombine(t, tree, All(), 16)
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024, 1025: 2048}
	for n, want := range cases {
		if got := nextPowerOfTwo(n); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}
