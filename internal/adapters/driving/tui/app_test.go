package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafuch-labs/hafuch-cli/internal/adapters/driving/tui/messages"
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Scan:      &MockScanService{},
		Discovery: &MockDiscoveryService{},
		Settings:  &MockSettingsService{},
	}
}

// goToScanView navigates the app from menu to scan view for testing.
func goToScanView(app *App) {
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewScan})
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView()) // Starts at menu
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Scan:      nil,
		Discovery: &MockDiscoveryService{},
	}

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_ScanCompleted(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	results := []domain.Palindrome{
		{ID: "pal-1", Normalized: "אבגבא", Original: "אבגבא", Length: 5},
	}
	msg := messages.ScanCompleted{Results: results, Err: nil}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Len(t, app.Results(), 1)
}

func TestApp_Update_ScanCompletedWithError(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := messages.ScanCompleted{Err: errors.New("scan failed")}
	app.Update(msg)

	assert.Error(t, app.Err())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	app.Update(messages.ViewChanged{View: messages.ViewScan})
	assert.Equal(t, messages.ViewScan, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewMenu})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_ResultSelected(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	goToScanView(app)

	p := domain.Palindrome{ID: "pal-1", Normalized: "אבא", Original: "אבא", Length: 3}
	app.Update(messages.ResultSelected{Palindrome: p})

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	view := app.View()

	assert.Contains(t, view, "Initialising")
}

func TestApp_View_Menu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.menuView.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "Hafuch")
	assert.Contains(t, view, "Scan")
	assert.Contains(t, view, "Discover")
}

func TestApp_View_Help(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "esc")
}

func TestApp_HelpEscReturnsToMenu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	testErr := errors.New("test error")
	app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
}

func TestApp_Update_SourceLookupCompleted(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	goToScanView(app)

	p := domain.Palindrome{ID: "pal-1", Normalized: "אבא", Length: 3}
	app.Update(messages.ResultSelected{Palindrome: p})

	lookup := domain.SourceLookup{
		PalindromeID: "pal-1",
		Status:       domain.LookupFound,
		Citation:     "Genesis 1:1",
	}
	app.Update(messages.SourceLookupCompleted{Lookup: lookup})

	got, ok := app.detailView.Lookup()
	require.True(t, ok)
	assert.Equal(t, domain.LookupFound, got.Status)
	assert.Equal(t, "Genesis 1:1", got.Citation)
}
