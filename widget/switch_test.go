package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/compound/view"
)

func TestSwitch(t *testing.T) {
	t.Run("renders off state", func(t *testing.T) {
		root, err := view.Mount(Switch(SwitchProps{}))
		require.NoError(t, err)
		defer root.Unmount()

		assert.Equal(t,
			`<button aria-checked="false" class="toggle-btn toggle-btn-off" role="switch" type="button"></button>`,
			root.HTML())
	})

	t.Run("renders on state and forwards clicks", func(t *testing.T) {
		clicks := 0

		root, err := view.Mount(Switch(SwitchProps{On: true, OnClick: func() { clicks++ }}))
		require.NoError(t, err)
		defer root.Unmount()

		assert.Contains(t, root.HTML(), `aria-checked="true"`)
		assert.Contains(t, root.HTML(), `toggle-btn-on`)

		btn := root.Find(func(n *view.Node) bool { return n.Tag == "button" })
		require.NotNil(t, btn)
		require.NoError(t, root.Dispatch(btn, "onclick"))
		assert.Equal(t, 1, clicks)
	})

	t.Run("extra attributes override defaults", func(t *testing.T) {
		root, err := view.Mount(Switch(SwitchProps{
			Attrs: []view.Attr{view.AriaLabel("Custom"), view.Class("custom")},
		}))
		require.NoError(t, err)
		defer root.Unmount()

		assert.Equal(t,
			`<button aria-checked="false" aria-label="Custom" class="custom" role="switch" type="button"></button>`,
			root.HTML())
	})
}
