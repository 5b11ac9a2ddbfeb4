package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/tui/views"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewForm ViewState = iota
	ViewHelp
	ViewDiscard
)

// App is the main TUI application model
type App struct {
	state   ViewState
	form    *views.TaxFormModel
	help    *views.HelpModel
	discard *views.ConfirmationModel

	payload *domain.Payload
	result  string

	width  int
	height int
}

// NewApp creates a new TUI application. clipboard may be nil.
func NewApp(source ports.CatalogSource, sink, clipboard ports.PayloadSink) *App {
	return &App{
		state:   ViewForm,
		form:    views.NewTaxFormModel(source, sink, clipboard),
		help:    views.NewHelpModel(),
		discard: views.NewDiscardConfirmation(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.discard.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDiscardMsg:
		a.discard.Detail = a.form.Summary()
		a.state = ViewDiscard
		return a, nil

	case views.SwitchToFormMsg:
		a.state = ViewForm
		return a, nil

	case views.DiscardMsg:
		slog.Info("tax form discarded")
		return a, tea.Quit

	case views.SubmittedMsg:
		a.payload = &msg.Payload
		a.result = msg.Message
		return a, tea.Quit

	case views.CatalogErrMsg:
		slog.Error("catalog load failed", "error", msg.Err)
	}

	// Catalog and submission results belong to the form whatever is on screen
	switch msg.(type) {
	case views.CatalogLoadedMsg, views.CatalogErrMsg, views.SubmitErrMsg, views.CopiedMsg:
		_, cmd := a.form.Update(msg)
		return a, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewDiscard:
		_, cmd = a.discard.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	case ViewDiscard:
		return a.discard.View()
	default:
		return a.form.View()
	}
}

// Payload returns the submitted payload, or nil if the form was left
// without submitting.
func (a *App) Payload() *domain.Payload {
	return a.payload
}

// Result returns the confirmation message of a successful submission
func (a *App) Result() string {
	return a.result
}
