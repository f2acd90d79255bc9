package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

func TestQueue_FIFO(t *testing.T) {
	q := state.NewQueue[int](4)
	require.True(t, q.Push(1))
	require.True(t, q.Push(2))
	require.True(t, q.Push(3))

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, q.Items())
	assert.Equal(t, 2, q.Len())
}

func TestQueue_FullRejectsPush(t *testing.T) {
	q := state.NewQueue[string](2)
	assert.True(t, q.Push("a"))
	assert.True(t, q.Push("b"))
	assert.False(t, q.Push("c"))
	assert.Equal(t, []string{"a", "b"}, q.Drain())
}

func TestQueue_PopEmpty(t *testing.T) {
	q := state.NewQueue[int](1)
	v, ok := q.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestQueue_DrainEmptiesAndWraps(t *testing.T) {
	q := state.NewQueue[int](3)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Push(3)
	q.Push(4)
	assert.Equal(t, []int{2, 3, 4}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.NotNil(t, q.Drain())
}

func TestNewQueue_ZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { state.NewQueue[int](0) })
}

func TestPropertyQueuePreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 32).Draw(t, "cap")
		q := state.NewQueue[int](capacity)
		var model []int
		ops := rapid.SliceOfN(rapid.IntRange(-1, 100), 0, 200).Draw(t, "ops")
		for _, op := range ops {
			if op < 0 {
				v, ok := q.Pop()
				if len(model) == 0 {
					if ok {
						t.Fatalf("pop on empty queue returned %d", v)
					}
					continue
				}
				if !ok || v != model[0] {
					t.Fatalf("pop = (%d, %v), want %d", v, ok, model[0])
				}
				model = model[1:]
				continue
			}
			pushed := q.Push(op)
			if pushed != (len(model) < capacity) {
				t.Fatalf("push accepted=%v with len=%d cap=%d", pushed, len(model), capacity)
			}
			if pushed {
				model = append(model, op)
			}
		}
		got := q.Items()
		if len(got) != len(model) {
			t.Fatalf("items = %v, want %v", got, model)
		}
		for i := range got {
			if got[i] != model[i] {
				t.Fatalf("items = %v, want %v", got, model)
			}
		}
	})
}
