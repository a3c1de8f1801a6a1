package compound

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectOrder(t *testing.T) {
	t.Run("render effects run before user effects", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		o := NewOwner()
		defer o.Dispose()

		_ = o.Run(func() error {
			NewEffect(func() { log = append(log, fmt.Sprintf("user %d", count.Read())) })
			NewRenderEffect(func() { log = append(log, fmt.Sprintf("render %d", count.Read())) })
			return nil
		})

		count.Write(1)

		assert.Equal(t, []string{"user 0", "render 0", "render 1", "user 1"}, log)
	})

	t.Run("user effects see what render effects produced", func(t *testing.T) {
		count := NewSignal(0)
		html := NewComputed(func() string { return fmt.Sprintf("<b>%d</b>", count.Read()) })

		shown := ""
		seen := []string{}

		NewRenderEffect(func() { shown = html.Read() })
		NewEffect(func() {
			count.Read()
			seen = append(seen, shown)
		})

		count.Write(1)

		assert.Equal(t, []string{"<b>0</b>", "<b>1</b>"}, seen)
	})

	t.Run("effects never see a partial update", func(t *testing.T) {
		count := NewSignal(0)
		double := NewComputed(func() int { return count.Read() * 2 })
		next := NewComputed(func() int { return count.Read() + 1 })

		log := []string{}
		NewEffect(func() {
			log = append(log, fmt.Sprintf("%d %d", double.Read(), next.Read()))
		})

		count.Write(2)

		assert.Equal(t, []string{"0 1", "4 3"}, log)
	})

	t.Run("cleanups run before the next execution", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() {
			c := count.Read()
			log = append(log, fmt.Sprintf("run %d", c))
			OnCleanup(func() { log = append(log, fmt.Sprintf("cleanup %d", c)) })
		})

		count.Write(1)

		assert.Equal(t, []string{"run 0", "cleanup 0", "run 1"}, log)
	})

	t.Run("untracked reads do not subscribe", func(t *testing.T) {
		runs := 0
		tracked := NewSignal(0)
		untracked := NewSignal(0)

		NewEffect(func() {
			runs++
			tracked.Read()
			Untrack(untracked.Read)
		})

		untracked.Write(1)
		assert.Equal(t, 1, runs)

		tracked.Write(1)
		assert.Equal(t, 2, runs)
	})

	t.Run("panics when effects never settle", func(t *testing.T) {
		count := NewSignal(0)

		assert.PanicsWithValue(t, ErrInfiniteUpdate, func() {
			NewEffect(func() {
				count.Write(count.Read() + 1)
			})
		})
	})
}
