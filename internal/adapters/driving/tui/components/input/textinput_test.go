package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
)

func TestNewScanInput(t *testing.T) {
	t.Run("with styles", func(t *testing.T) {
		in := NewScanInput(styles.DefaultStyles())

		require.NotNil(t, in)
		assert.True(t, in.Focused())
		assert.Empty(t, in.Value())
	})

	t.Run("nil styles falls back to default", func(t *testing.T) {
		in := NewScanInput(nil)

		require.NotNil(t, in)
	})
}

func TestScanInput_Init(t *testing.T) {
	in := NewScanInput(nil)

	cmd := in.Init()

	assert.NotNil(t, cmd)
}

func TestScanInput_Update(t *testing.T) {
	in := NewScanInput(nil)

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("אבא")})

	assert.Equal(t, "אבא", in.Value())
}

func TestScanInput_SetValue(t *testing.T) {
	in := NewScanInput(nil)

	in.SetValue("שמש")

	assert.Equal(t, "שמש", in.Value())
}

func TestScanInput_FocusBlur(t *testing.T) {
	in := NewScanInput(nil)

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestScanInput_SetWidth(t *testing.T) {
	in := NewScanInput(nil)

	in.SetWidth(80)
	assert.Equal(t, 80, in.Width())

	// Narrow widths clamp the inner input but keep the requested width.
	in.SetWidth(15)
	assert.Equal(t, 15, in.Width())
}

func TestScanInput_Reset(t *testing.T) {
	in := NewScanInput(nil)
	in.SetValue("אבא")

	in.Reset()

	assert.Empty(t, in.Value())
}

func TestScanInput_View(t *testing.T) {
	in := NewScanInput(nil)
	in.SetValue("אבא")

	view := in.View()

	assert.Contains(t, view, "Text:")
	assert.Contains(t, view, "אבא")
}
