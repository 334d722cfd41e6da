package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

func testResults() []domain.Palindrome {
	return []domain.Palindrome{
		{ID: "pal-1", Normalized: "אבגבא", Original: "אבגבא", Length: 5},
		{ID: "pal-2", Normalized: "שמש", Original: "שָׁמֶשׁ", Length: 3},
		{ID: "pal-3", Normalized: "אבבא", Original: "אבבא", Length: 4},
	}
}

func TestNewResultList(t *testing.T) {
	rl := NewResultList(nil)

	require.NotNil(t, rl)
	assert.True(t, rl.IsEmpty())
	assert.Equal(t, 0, rl.Count())
	assert.Nil(t, rl.SelectedResult())
}

func TestResultList_SetResults(t *testing.T) {
	rl := NewResultList(nil)

	rl.SetResults(testResults())

	assert.Equal(t, 3, rl.Count())
	assert.False(t, rl.IsEmpty())
	assert.Equal(t, 0, rl.Selected())
}

func TestResultList_SetResults_ResetsSelection(t *testing.T) {
	rl := NewResultList(nil)
	rl.SetResults(testResults())
	rl.SetSelected(2)

	rl.SetResults(testResults()[:1])

	assert.Equal(t, 0, rl.Selected())
}

func TestResultList_Navigation(t *testing.T) {
	rl := NewResultList(nil)
	rl.SetResults(testResults())

	// Can't move above the first result
	rl.MoveUp()
	assert.Equal(t, 0, rl.Selected())

	rl.MoveDown()
	assert.Equal(t, 1, rl.Selected())

	rl.MoveDown()
	rl.MoveDown() // clamped at the last result
	assert.Equal(t, 2, rl.Selected())

	rl.MoveUp()
	assert.Equal(t, 1, rl.Selected())
}

func TestResultList_Update(t *testing.T) {
	rl := NewResultList(nil)
	rl.SetResults(testResults())

	rl, _ = rl.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, rl.Selected())

	rl, _ = rl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, rl.Selected())

	rl, _ = rl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, rl.Selected())

	rl, _ = rl.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, rl.Selected())
}

func TestResultList_SetSelected(t *testing.T) {
	rl := NewResultList(nil)
	rl.SetResults(testResults())

	rl.SetSelected(2)
	assert.Equal(t, 2, rl.Selected())

	// Out-of-range indices are ignored
	rl.SetSelected(10)
	assert.Equal(t, 2, rl.Selected())

	rl.SetSelected(-1)
	assert.Equal(t, 2, rl.Selected())
}

func TestResultList_SelectedResult(t *testing.T) {
	rl := NewResultList(nil)
	rl.SetResults(testResults())
	rl.SetSelected(1)

	result := rl.SelectedResult()

	require.NotNil(t, result)
	assert.Equal(t, "pal-2", result.ID)
	assert.Equal(t, "שמש", result.Normalized)
}

func TestResultList_View(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		rl := NewResultList(nil)

		view := rl.View()

		assert.Contains(t, view, "No palindromes")
	})

	t.Run("with results", func(t *testing.T) {
		rl := NewResultList(nil)
		rl.SetDimensions(80, 20)
		rl.SetResults(testResults())

		view := rl.View()

		assert.Contains(t, view, "Palindromes (3)")
		assert.Contains(t, view, "אבגבא")
		assert.Contains(t, view, "(5)")
	})

	t.Run("shows raw span when it differs", func(t *testing.T) {
		rl := NewResultList(nil)
		rl.SetDimensions(80, 20)
		rl.SetResults(testResults())

		view := rl.View()

		assert.Contains(t, view, "שָׁמֶשׁ")
	})
}

func TestResultList_SetDimensions(t *testing.T) {
	rl := NewResultList(nil)

	rl.SetDimensions(120, 40)

	assert.Equal(t, 120, rl.Width())
	assert.Equal(t, 40, rl.Height())
}
