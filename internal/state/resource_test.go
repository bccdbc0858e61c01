package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceLifecycle(t *testing.T) {
	var r Resource[[]string]
	assert.Equal(t, Idle, r.Status())

	gen := r.Begin()
	assert.True(t, r.Loading())

	assert.True(t, r.Complete(gen, []string{"a", "b"}))
	assert.True(t, r.Loaded())
	assert.Equal(t, []string{"a", "b"}, r.Data())
	assert.Empty(t, r.Err())
}

func TestResourceReplacesWholesale(t *testing.T) {
	var r Resource[[]int]
	gen := r.Begin()
	r.Complete(gen, []int{1, 2, 3})

	gen = r.Begin()
	assert.Equal(t, []int{1, 2, 3}, r.Data(), "prior items survive while reloading")
	r.Complete(gen, []int{9})
	assert.Equal(t, []int{9}, r.Data())
}

func TestResourceEmptyResultIsLoadedNotErrored(t *testing.T) {
	var r Resource[[]int]
	gen := r.Begin()
	assert.True(t, r.Complete(gen, []int{}))
	assert.True(t, r.Loaded())
	assert.False(t, r.Errored())
	assert.Empty(t, r.Data())
}

func TestResourceFailPolicies(t *testing.T) {
	var retain Resource[[]int]
	gen := retain.Begin()
	retain.Complete(gen, []int{1, 2})
	gen = retain.Begin()
	assert.True(t, retain.Fail(gen, "boom", false))
	assert.True(t, retain.Errored())
	assert.Equal(t, "boom", retain.Err())
	assert.Equal(t, []int{1, 2}, retain.Data(), "retain policy keeps prior items")

	var clear Resource[[]int]
	gen = clear.Begin()
	clear.Complete(gen, []int{1, 2})
	gen = clear.Begin()
	assert.True(t, clear.Fail(gen, "boom", true))
	assert.Empty(t, clear.Data(), "clear policy drops prior items")
}

// Fast navigation: a fetch for entity 7 is superseded by one for
// entity 9, then 7's response arrives late. The view must keep 9.
func TestLateResponseDiscarded(t *testing.T) {
	var r Resource[int]

	gen7 := r.Begin()
	gen9 := r.Begin()

	assert.True(t, r.Complete(gen9, 9))
	assert.False(t, r.Complete(gen7, 7), "stale response must be discarded")
	assert.Equal(t, 9, r.Data())
	assert.True(t, r.Loaded())
}

func TestLateFailureDiscarded(t *testing.T) {
	var r Resource[int]

	stale := r.Begin()
	current := r.Begin()
	r.Complete(current, 42)

	assert.False(t, r.Fail(stale, "too late", true))
	assert.True(t, r.Loaded())
	assert.Equal(t, 42, r.Data())
}

func TestResetInvalidatesInFlight(t *testing.T) {
	var r Resource[int]
	gen := r.Begin()
	r.Reset()

	assert.False(t, r.Complete(gen, 1))
	assert.Equal(t, Idle, r.Status())
	assert.Zero(t, r.Data())
}

func TestJoinAllOrNothing(t *testing.T) {
	assert.Equal(t, Loaded, Join(Loaded, Loaded))
	assert.Equal(t, Loading, Join(Loaded, Loading), "loading clears only when both settle")
	assert.Equal(t, Loading, Join(Idle, Loaded))
	assert.Equal(t, Errored, Join(Loaded, Errored), "one failure fails the join")
	assert.Equal(t, Errored, Join(Errored, Loading))
	assert.Equal(t, Idle, Join())
}
