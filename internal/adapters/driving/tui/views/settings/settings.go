// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionScanBounds
	SectionLLM
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyTab   = "tab"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error
	notice   string

	// Navigation state
	section      Section
	selected     int // selection within current section
	focusedField int // for text input focus

	// Text inputs
	minInput    textinput.Model
	maxInput    textinput.Model
	apiKeyInput textinput.Model

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	minInput := textinput.New()
	minInput.Placeholder = "3"
	minInput.CharLimit = 4

	maxInput := textinput.New()
	maxInput.Placeholder = "50"
	maxInput.CharLimit = 4

	apiKeyInput := textinput.New()
	apiKeyInput.Placeholder = "Enter API key"
	apiKeyInput.EchoMode = textinput.EchoPassword
	apiKeyInput.CharLimit = 256

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		minInput:        minInput,
		maxInput:        maxInput,
		apiKeyInput:     apiKeyInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.notice = "Saved"
			// Reload settings after save
			cmd := v.loadSettings()
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Global escape to go back
	if msg.String() == "esc" {
		switch v.section {
		case SectionOverview:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		default:
			v.section = SectionOverview
			v.selected = 0
			v.notice = ""
			return v, nil
		}
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionScanBounds:
		return v.handleScanBoundsKeys(msg)
	case SectionLLM:
		return v.handleLLMKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Overview menu: Scan Bounds, LLM
	maxItems := 2

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < maxItems-1 {
			v.selected++
		}
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionScanBounds
			v.focusedField = 0
			v.seedBoundInputs()
			v.minInput.Focus()
		case 1:
			v.section = SectionLLM
			v.selected = v.llmProviderIndex()
		}
	}
	return v, nil
}

// seedBoundInputs pre-fills the bound inputs from current settings.
func (v *View) seedBoundInputs() {
	if v.settings == nil {
		return
	}
	v.minInput.SetValue(strconv.Itoa(v.settings.Scan.MinLength))
	v.maxInput.SetValue(strconv.Itoa(v.settings.Scan.MaxLength))
}

func (v *View) handleScanBoundsKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyTab, keyDown:
		// Toggle between the two fields
		if v.focusedField == 0 {
			v.focusedField = 1
			v.minInput.Blur()
			v.maxInput.Focus()
		} else {
			v.focusedField = 0
			v.maxInput.Blur()
			v.minInput.Focus()
		}
		return v, nil

	case keyEnter:
		return v, v.saveScanBounds()
	}

	// Forward typing to the focused input
	var cmd tea.Cmd
	if v.focusedField == 0 {
		v.minInput, cmd = v.minInput.Update(msg)
	} else {
		v.maxInput, cmd = v.maxInput.Update(msg)
	}
	return v, cmd
}

// saveScanBounds parses and persists the entered bounds.
func (v *View) saveScanBounds() tea.Cmd {
	minLength, err := strconv.Atoi(strings.TrimSpace(v.minInput.Value()))
	if err != nil {
		v.err = fmt.Errorf("minimum length must be a number")
		return nil
	}
	maxLength, err := strconv.Atoi(strings.TrimSpace(v.maxInput.Value()))
	if err != nil {
		v.err = fmt.Errorf("maximum length must be a number")
		return nil
	}

	return func() tea.Msg {
		err := v.settingsService.SetScanBounds(minLength, maxLength)
		return messages.SettingsSaved{Err: err}
	}
}

func (v *View) handleLLMKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllLLMProviders()

	// API key entry mode
	if v.apiKeyInput.Focused() {
		if msg.String() == keyEnter {
			provider := providers[v.selected]
			model := domain.DefaultLLMModels()[provider]
			apiKey := v.apiKeyInput.Value()
			v.apiKeyInput.Blur()
			return v, func() tea.Msg {
				err := v.settingsService.SetLLMProvider(provider, model, apiKey)
				return messages.SettingsSaved{Err: err}
			}
		}
		var cmd tea.Cmd
		v.apiKeyInput, cmd = v.apiKeyInput.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(providers)-1 {
			v.selected++
		}
	case keyEnter:
		provider := providers[v.selected]
		if provider.RequiresAPIKey() {
			v.apiKeyInput.SetValue("")
			return v, v.apiKeyInput.Focus()
		}
		model := domain.DefaultLLMModels()[provider]
		return v, func() tea.Msg {
			err := v.settingsService.SetLLMProvider(provider, model, "")
			return messages.SettingsSaved{Err: err}
		}
	}
	return v, nil
}

// llmProviderIndex returns the index of the currently configured provider.
func (v *View) llmProviderIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, p := range domain.AllLLMProviders() {
		if p == v.settings.LLM.Provider {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	switch v.section {
	case SectionOverview:
		return v.viewOverview()
	case SectionScanBounds:
		return v.viewScanBounds()
	case SectionLLM:
		return v.viewLLM()
	}
	return ""
}

func (v *View) viewOverview() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	items := []string{"Scan Bounds", "LLM Provider"}
	for i, item := range items {
		cursor := "  "
		line := v.styles.Normal.Render(item)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(item)
		}
		b.WriteString(cursor + line + "\n")
	}

	if v.settings != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
			"Bounds: %d-%d   LLM: %s",
			v.settings.Scan.MinLength,
			v.settings.Scan.MaxLength,
			v.settings.LLM.Provider.Description(),
		)))
	}

	if v.notice != "" {
		b.WriteString("\n" + v.styles.Success.Render(v.notice))
	}
	if v.err != nil {
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [enter] Select  [esc] Back"))

	return b.String()
}

func (v *View) viewScanBounds() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Scan Bounds"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render("Min length: "))
	b.WriteString(v.minInput.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Max length: "))
	b.WriteString(v.maxInput.View())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] Switch field  [enter] Save  [esc] Back"))

	return b.String()
}

func (v *View) viewLLM() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("LLM Provider"))
	b.WriteString("\n\n")

	for i, p := range domain.AllLLMProviders() {
		cursor := "  "
		line := v.styles.Normal.Render(p.Description())
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(p.Description())
		}
		b.WriteString(cursor + line + "\n")
	}

	if v.apiKeyInput.Focused() {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("API key: "))
		b.WriteString(v.apiKeyInput.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [enter] Select  [esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) CurrentSection() Section {
	return v.section
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to the overview section.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.focusedField = 0
	v.notice = ""
	v.err = nil
	v.minInput.Blur()
	v.maxInput.Blur()
	v.apiKeyInput.Blur()
}
