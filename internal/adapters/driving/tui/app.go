package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/styles"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/views/detail"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/views/discover"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/views/menu"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/views/scan"
	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/views/settings"
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// scanView is the scan input and results view.
	scanView *scan.View

	// detailView shows a single palindrome with its source lookup.
	detailView *detail.View

	// discoverView is the AI palindrome discovery view.
	discoverView *discover.View

	// settingsView is the settings configuration view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	scanView := scan.NewView(s, nil, ports.Scan)
	detailView := detail.NewView(s, ports.Discovery)
	discoverView := discover.NewView(s, ports.Discovery)
	settingsView := settings.NewView(s, ports.Settings)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menuView,
		scanView:     scanView,
		detailView:   detailView,
		discoverView: discoverView,
		settingsView: settingsView,
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.scanView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.discoverView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("hafuch - Hebrew Palindromes"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.scanView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.discoverView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewScan:
			a.scanView, cmd = a.scanView.Update(msg)
			a.err = a.scanView.Err()
			return a, cmd

		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewDiscover:
			a.discoverView, cmd = a.discoverView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ScanCompleted:
		a.scanView, cmd = a.scanView.Update(msg)
		a.err = a.scanView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewScan:
			return a, a.scanView.Init()
		case messages.ViewDiscover:
			a.discoverView.Reset()
			return a, a.discoverView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewDetail:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ResultSelected:
		// Navigate from scan results to the detail view
		a.detailView.SetPalindrome(msg.Palindrome)
		a.currentView = messages.ViewDetail
		return a, a.detailView.Init()

	case messages.SourceLookupCompleted:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.DiscoveryCompleted:
		a.discoverView, cmd = a.discoverView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewScan:
			a.scanView, cmd = a.scanView.Update(msg)
		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewDiscover:
			a.discoverView, cmd = a.discoverView.Update(msg)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewScan:
		a.scanView, cmd = a.scanView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewDiscover:
		a.discoverView, cmd = a.discoverView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewScan:
		return a.scanView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewDiscover:
		return a.discoverView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Scan:
  (type)      Enter Hebrew text
  enter       Scan for palindromes
  esc         Back to Menu

Results:
  j/k, ↑/↓    Navigate palindromes
  enter       Open detail view
  n           New scan

Detail:
  s           Ask the model for the palindrome's source
  esc         Back to results

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Results returns the current scan results.
func (a *App) Results() []domain.Palindrome {
	return a.scanView.Results()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set scanView dimensions so it renders properly
	a.scanView.SetDimensions(width, height)
}
