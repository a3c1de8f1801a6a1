package compound

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("concurrent read/write", func(t *testing.T) {
		var wg sync.WaitGroup
		count := NewSignal(0)

		wg.Go(func() {
			count.Write(count.Read() + 1)
		})

		wg.Wait()
		assert.Equal(t, 1, count.Read())
	})

	t.Run("zero values", func(t *testing.T) {
		err := NewSignal[error](nil)
		assert.Nil(t, err.Read())

		err.Write(errors.New("oops"))
		assert.EqualError(t, err.Read(), "oops")

		err.Write(nil)
		assert.Nil(t, err.Read())
	})
}

func TestSignalEquality(t *testing.T) {
	type payload struct{ v any }

	t.Run("equal values do not notify", func(t *testing.T) {
		name := NewSignal(payload{"a"})

		runs := 0
		NewEffect(func() {
			name.Read()
			runs++
		})

		name.Write(payload{"a"})
		assert.Equal(t, 1, runs)

		name.Write(payload{"b"})
		assert.Equal(t, 2, runs)
	})

	t.Run("values holding a slice always notify", func(t *testing.T) {
		items := NewSignal(payload{[]int{1}})

		runs := 0
		NewEffect(func() {
			items.Read()
			runs++
		})

		assert.NotPanics(t, func() {
			items.Write(payload{[]int{1}})
		})
		assert.Equal(t, 2, runs)
	})
}

func TestSignalUpdate(t *testing.T) {
	t.Run("applies transition to the latest value", func(t *testing.T) {
		on := NewSignal(false)
		flip := func(v bool) bool { return !v }

		NewBatch(func() {
			on.Update(flip)
			on.Update(flip)
			on.Update(flip)
		})

		assert.True(t, on.Read())
	})

	t.Run("does not track the read", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		other := NewSignal(0)

		NewEffect(func() {
			runs++
			other.Read()
			count.Update(func(c int) int { return c + 1 })
		})

		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, count.Read())

		other.Write(1)
		assert.Equal(t, 2, runs)
		assert.Equal(t, 2, count.Read())
	})
}
