// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
)

// ScanInput wraps a bubbles textinput for entering Hebrew text to scan.
type ScanInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewScanInput creates a new scan input component.
func NewScanInput(s *styles.Styles) *ScanInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Paste Hebrew text..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	return &ScanInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the scan input.
func (s *ScanInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *ScanInput) Update(msg tea.Msg) (*ScanInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the scan input.
func (s *ScanInput) View() string {
	label := s.styles.Title.Render("Text: ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (s *ScanInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *ScanInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *ScanInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *ScanInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *ScanInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *ScanInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *ScanInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *ScanInput) Reset() {
	s.textinput.Reset()
}
