package ring_test

import (
	"testing"

	"github.com/netdash/netdash/internal/ring"
	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	t.Run("keeps insertion order below capacity", func(st *testing.T) {
		r := ring.New[int](5)

		r.Push(1)
		r.Push(2)
		r.Push(3)

		assert.Equal(st, 3, r.Len())
		assert.Equal(st, []int{1, 2, 3}, r.Values())
	})

	t.Run("drops oldest entries on overflow", func(st *testing.T) {
		r := ring.New[uint64](100)

		for i := 0; i < 105; i++ {
			r.Push(uint64(i))
		}

		values := r.Values()

		assert.Equal(st, 100, r.Len())
		assert.Equal(st, uint64(5), values[0])
		assert.Equal(st, uint64(104), values[99])

		for i := 1; i < len(values); i++ {
			assert.Equal(st, values[i-1]+1, values[i])
		}
	})

	t.Run("values returns a copy", func(st *testing.T) {
		r := ring.New[string](2)

		r.Push("a")

		values := r.Values()
		values[0] = "mutated"

		assert.Equal(st, []string{"a"}, r.Values())
	})

	t.Run("clear empties the ring", func(st *testing.T) {
		r := ring.New[int](3)

		r.Push(1)
		r.Push(2)
		r.Clear()

		assert.Equal(st, 0, r.Len())
		assert.Equal(st, 3, r.Capacity())
	})
}
