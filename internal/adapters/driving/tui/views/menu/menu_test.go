package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Equal(t, 0, v.Selected())
}

func TestView_Init(t *testing.T) {
	v := NewView(nil)

	assert.Nil(t, v.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	v := NewView(nil)

	v, _ = v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := v.View()
	assert.Contains(t, view, "Hafuch")
}

func TestView_Update_Navigation(t *testing.T) {
	v := NewView(nil)

	// Can't move above the first item
	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Selected())

	for range 10 {
		v, _ = v.Update(keyMsg("j"))
	}
	assert.Equal(t, 4, v.Selected(), "selection clamps at the last item")

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 3, v.Selected())
}

func TestView_Update_SelectView(t *testing.T) {
	v := NewView(nil)
	v, _ = v.Update(keyMsg("j")) // Discover

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDiscover, changed.View)
}

func TestView_Update_SelectQuit(t *testing.T) {
	v := NewView(nil)
	for range 4 {
		v, _ = v.Update(keyMsg("j"))
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Update_QuitKey(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_View(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		v := NewView(nil)

		assert.Contains(t, v.View(), "Initialising")
	})

	t.Run("ready", func(t *testing.T) {
		v := NewView(nil)
		v.SetDimensions(100, 40)

		view := v.View()

		assert.Contains(t, view, "Hafuch")
		assert.Contains(t, view, "Hebrew Palindrome Finder")
		assert.Contains(t, view, "Scan")
		assert.Contains(t, view, "Discover")
		assert.Contains(t, view, "Settings")
		assert.Contains(t, view, "Quit")
	})
}
