// Package detail provides the palindrome detail view component for the TUI.
// It shows a single scan result and drives the asynchronous source lookup.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// View is the palindrome detail view.
type View struct {
	styles *styles.Styles

	discoveryService driving.DiscoveryService
	ctx              context.Context

	palindrome *domain.Palindrome

	// lookups holds the latest lookup record per palindrome ID. Records
	// are replaced wholesale on each state change, never mutated.
	lookups map[string]domain.SourceLookup

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new palindrome detail view.
func NewView(s *styles.Styles, discoveryService driving.DiscoveryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:           s,
		discoveryService: discoveryService,
		ctx:              context.Background(),
		lookups:          make(map[string]domain.SourceLookup),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetPalindrome sets the palindrome to display.
func (v *View) SetPalindrome(p domain.Palindrome) {
	v.palindrome = &p
	v.err = nil
}

// Palindrome returns the currently displayed palindrome.
func (v *View) Palindrome() *domain.Palindrome {
	return v.palindrome
}

// Lookup returns the current lookup record for the displayed palindrome.
func (v *View) Lookup() (domain.SourceLookup, bool) {
	if v.palindrome == nil {
		return domain.SourceLookup{}, false
	}
	lookup, ok := v.lookups[v.palindrome.ID]
	return lookup, ok
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SourceLookupCompleted:
		// Replace the record for this palindrome with the new one.
		v.lookups[msg.Lookup.PalindromeID] = msg.Lookup
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "s":
		return v, v.startLookup()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewScan}
		}
	}

	return v, nil
}

// startLookup begins an asynchronous source lookup for the displayed
// palindrome. A pending record is installed immediately; the resolved or
// failed record replaces it when the command completes.
func (v *View) startLookup() tea.Cmd {
	if v.palindrome == nil || v.discoveryService == nil {
		return nil
	}
	if current, ok := v.lookups[v.palindrome.ID]; ok && current.Status == domain.LookupPending {
		// A lookup is already running for this palindrome.
		return nil
	}

	p := *v.palindrome
	v.lookups[p.ID] = domain.SourceLookup{
		PalindromeID: p.ID,
		Status:       domain.LookupPending,
	}

	return func() tea.Msg {
		lookup, err := v.discoveryService.IdentifySource(v.ctx, p)
		if err != nil {
			lookup = domain.SourceLookup{PalindromeID: p.ID, Status: domain.LookupFailed, Reason: err.Error()}
		}
		return messages.SourceLookupCompleted{Lookup: lookup}
	}
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.palindrome == nil {
		return v.styles.Muted.Render("No palindrome selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Palindrome"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Normalised: "))
	b.WriteString(v.styles.Hebrew.Render(v.palindrome.Normalized))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Found in:   "))
	b.WriteString(v.styles.Normal.Render(v.palindrome.Original))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Length:     "))
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%d", v.palindrome.Length)))
	b.WriteString("\n\n")

	b.WriteString(v.renderLookup())

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[s] look up source  [esc] back"))

	return b.String()
}

// renderLookup renders the source lookup state for the displayed palindrome.
func (v *View) renderLookup() string {
	lookup, ok := v.Lookup()
	if !ok {
		if v.discoveryService == nil || !v.discoveryService.Available() {
			return v.styles.Muted.Render("Source lookup unavailable (no LLM configured)")
		}
		return v.styles.Muted.Render("Press 's' to ask the model for this palindrome's source")
	}

	switch lookup.Status {
	case domain.LookupPending:
		return v.styles.Muted.Render("Looking up source...")
	case domain.LookupFound:
		return v.styles.Citation.Render("Source: " + lookup.Citation)
	case domain.LookupNotFound:
		return v.styles.Muted.Render("The model knows no canonical source")
	case domain.LookupFailed:
		return v.styles.Error.Render("Lookup failed: " + lookup.Reason)
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
