package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/compound/toggle"
	"github.com/AnatoleLucet/compound/view"
)

func TestUsage(t *testing.T) {
	calls := []bool{}

	root, err := view.Mount(Usage(toggle.Options{
		OnToggle: func(on bool) { calls = append(calls, on) },
	}))
	require.NoError(t, err)
	defer root.Unmount()

	pages := []string{}
	root.Watch(func(html string) { pages = append(pages, html) })

	btn := root.FindByID(SwitchID)
	require.NotNil(t, btn)
	require.NoError(t, root.Dispatch(btn, "onclick"))

	assert.Equal(t, []string{
		`The button is off<div><button aria-checked="false" class="toggle-btn toggle-btn-off" id="toggle-switch" role="switch" type="button"></button></div>`,
		`The button is on<div><button aria-checked="true" class="toggle-btn toggle-btn-on" id="toggle-switch" role="switch" type="button"></button></div>`,
	}, pages)
	assert.Equal(t, []bool{true}, calls)
}
