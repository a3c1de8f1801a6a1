package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("publishes once", func(t *testing.T) {
		on := NewSignal(false)
		flip := func(v bool) bool { return !v }

		seen := []bool{}
		NewEffect(func() { seen = append(seen, on.Read()) })

		NewBatch(func() {
			on.Update(flip)
			on.Update(flip)
			on.Update(flip)
		})

		assert.Equal(t, []bool{false, true}, seen)
	})

	t.Run("a memo holding its value publishes nothing", func(t *testing.T) {
		on := NewSignal(false)
		flag := NewComputed(on.Read)

		runs := 0
		NewEffect(func() {
			flag.Read()
			runs++
		})

		NewBatch(func() {
			on.Write(true)
			on.Write(false)
		})

		assert.Equal(t, 1, runs)
	})

	t.Run("flushes when the outermost batch ends", func(t *testing.T) {
		count := NewSignal(0)

		seen := []int{}
		NewEffect(func() { seen = append(seen, count.Read()) })

		NewBatch(func() {
			count.Write(1)

			NewBatch(func() { count.Write(2) })
			assert.Equal(t, []int{0}, seen)

			count.Write(3)
		})

		assert.Equal(t, []int{0, 3}, seen)
	})
}

func TestOnSettled(t *testing.T) {
	t.Run("waits for the next update when idle", func(t *testing.T) {
		called := 0
		count := NewSignal(0)

		OnSettled(func() { called++ })
		assert.Equal(t, 0, called)

		count.Write(1)
		count.Write(2)
		assert.Equal(t, 1, called)
	})

	t.Run("waits for the batch", func(t *testing.T) {
		log := []string{}

		NewBatch(func() {
			OnSettled(func() { log = append(log, "settled") })
			log = append(log, "batch")
		})

		assert.Equal(t, []string{"batch", "settled"}, log)
	})

	t.Run("runs after the effects of the flush", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() {
			if count.Read() == 1 {
				OnSettled(func() { log = append(log, "settled") })
			}
		})
		NewEffect(func() {
			log = append(log, "effect")
			count.Read()
		})

		count.Write(1)

		assert.Equal(t, []string{"effect", "effect", "settled"}, log)
	})

	t.Run("is not tracked", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)

		NewEffect(func() {
			runs++
			OnSettled(func() { count.Read() })
		})

		count.Write(1)

		assert.Equal(t, 1, runs)
	})
}
