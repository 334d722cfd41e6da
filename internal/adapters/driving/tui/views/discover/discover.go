// Package discover provides the AI palindrome discovery view for the TUI.
package discover

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/components/input"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// defaultLimit is how many palindromes a discovery request asks for.
const defaultLimit = 10

// View is the AI discovery view: a theme input plus discovered results.
type View struct {
	styles *styles.Styles

	discoveryService driving.DiscoveryService
	ctx              context.Context

	input     *input.ScanInput
	discovery *domain.Discovery
	selected  int

	width      int
	height     int
	ready      bool
	busy       bool
	err        error
	focusInput bool
}

// NewView creates a new discovery view.
func NewView(s *styles.Styles, discoveryService driving.DiscoveryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	themeInput := input.NewScanInput(s)
	themeInput.SetValue("")

	return &View{
		styles:           s,
		discoveryService: discoveryService,
		ctx:              context.Background(),
		input:            themeInput,
		focusInput:       true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the discovery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DiscoveryCompleted:
		v.busy = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.discovery = msg.Discovery
		v.selected = 0
		v.focusInput = false
		v.input.Blur()
		return v, nil

	case messages.ErrorOccurred:
		v.busy = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter && v.focusInput && !v.busy {
		theme := v.input.Value()
		v.busy = true
		v.err = nil
		return v, v.performDiscovery(theme)
	}

	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.discovery != nil && v.selected < len(v.discovery.Items)-1 {
			v.selected++
		}
	case "n":
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
	}

	return v, nil
}

// performDiscovery asks the AI collaborator for palindromes.
func (v *View) performDiscovery(theme string) tea.Cmd {
	return func() tea.Msg {
		if v.discoveryService == nil {
			return messages.DiscoveryCompleted{Err: domain.ErrLLMUnavailable}
		}
		discovery, err := v.discoveryService.Discover(v.ctx, theme, defaultLimit)
		return messages.DiscoveryCompleted{Discovery: discovery, Err: err}
	}
}

// View renders the discovery view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Discover"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Ask the model for Hebrew palindromes on a theme (empty for any)"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Asking the model..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.discovery != nil:
		b.WriteString(v.renderDiscovery())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] discover  [n] new theme  [esc] back"))

	return b.String()
}

// renderDiscovery renders the discovered palindromes.
func (v *View) renderDiscovery() string {
	if len(v.discovery.Items) == 0 {
		line := v.styles.Muted.Render("The model proposed no verifiable palindromes")
		if v.discovery.Rejected > 0 {
			line += "\n" + v.styles.Warning.Render(
				fmt.Sprintf("%d proposal(s) failed verification", v.discovery.Rejected))
		}
		return line
	}

	lines := make([]string, 0, len(v.discovery.Items)+2)
	header := v.styles.Subtitle.Render(fmt.Sprintf("Discovered (%d)", len(v.discovery.Items)))
	lines = append(lines, header, "")

	for i, item := range v.discovery.Items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		var line string
		if i == v.selected {
			line = v.styles.Selected.Render(indicator + item.Text)
		} else {
			line = v.styles.Hebrew.Render(indicator + item.Text)
		}
		if item.Source != "" {
			line += "  " + v.styles.Muted.Render("("+item.Source+")")
		}
		lines = append(lines, line)
	}

	if v.discovery.Rejected > 0 {
		lines = append(lines, "", v.styles.Warning.Render(
			fmt.Sprintf("%d proposal(s) failed verification", v.discovery.Rejected)))
	}

	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Busy returns whether a discovery request is in flight.
func (v *View) Busy() bool {
	return v.busy
}

// Discovery returns the latest discovery result.
func (v *View) Discovery() *domain.Discovery {
	return v.discovery
}

// Selected returns the currently selected item index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.discovery = nil
	v.selected = 0
	v.busy = false
	v.err = nil
}
