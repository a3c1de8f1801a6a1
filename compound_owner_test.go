package compound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwner(t *testing.T) {
	t.Run("disposes what it owns", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		o := NewOwner()
		_ = o.Run(func() error {
			NewEffect(func() {
				log = append(log, "effect")
				count.Read()
				OnCleanup(func() { log = append(log, "cleanup") })
			})
			return nil
		})

		o.Dispose()
		count.Write(1)

		assert.Equal(t, []string{"effect", "cleanup"}, log)
	})

	t.Run("cleanups run once, dispose listeners every time", func(t *testing.T) {
		cleanups, disposes := 0, 0

		o := NewOwner()
		o.OnCleanup(func() { cleanups++ })
		o.OnDispose(func() { disposes++ })

		o.Dispose()
		o.Dispose()

		assert.Equal(t, 1, cleanups)
		assert.Equal(t, 2, disposes)
	})

	t.Run("a computation disposes the owners of its previous run", func(t *testing.T) {
		count := NewSignal(0)
		disposed := []int{}

		NewEffect(func() {
			c := count.Read()
			NewOwner().OnDispose(func() { disposed = append(disposed, c) })
		})

		count.Write(1)
		count.Write(2)

		assert.Equal(t, []int{0, 1}, disposed)
	})

	t.Run("retained owners survive runs of their computation", func(t *testing.T) {
		count := NewSignal(0)
		created, disposed := 0, 0

		parent := NewOwner()
		_ = parent.Run(func() error {
			NewEffect(func() {
				count.Read()
				if created > 0 {
					return
				}

				created++
				child := NewOwner()
				child.Retain()
				child.OnDispose(func() { disposed++ })
			})
			return nil
		})

		count.Write(1)
		count.Write(2)
		assert.Equal(t, 0, disposed)

		parent.Dispose()
		assert.Equal(t, 1, disposed)
	})

	t.Run("errors reach the closest handler", func(t *testing.T) {
		boom := errors.New("boom")
		fail := NewSignal(false)

		var outer, inner []any

		root := NewOwner()
		root.OnError(func(err any) { outer = append(outer, err) })

		err := root.Run(func() error {
			NewComputed(func() int {
				if fail.Read() {
					panic(boom)
				}
				return 0
			})

			handled := NewOwner()
			handled.OnError(func(err any) { inner = append(inner, err) })

			return handled.Run(func() error {
				panic("inner")
			})
		})
		require.NoError(t, err)

		fail.Write(true)

		assert.Equal(t, []any{"inner"}, inner)
		assert.Equal(t, []any{boom}, outer)
	})

	t.Run("panics without a handler", func(t *testing.T) {
		assert.PanicsWithValue(t, "unhandled", func() {
			_ = NewOwner().Run(func() error { panic("unhandled") })
		})
	})
}
