package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks a yes/no question and turns the answer into a message
type ConfirmationModel struct {
	ViewState
	Question  string
	Detail    string
	Keys      ConfirmKeyMap
	onConfirm func() tea.Msg
	onCancel  func() tea.Msg
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel(question string, onConfirm, onCancel func() tea.Msg) *ConfirmationModel {
	return &ConfirmationModel{
		Question:  question,
		Keys:      DefaultConfirmKeys,
		onConfirm: onConfirm,
		onCancel:  onCancel,
	}
}

// NewDiscardConfirmation asks before throwing away an edited form
func NewDiscardConfirmation() *ConfirmationModel {
	return NewConfirmationModel("Discard this tax?",
		func() tea.Msg { return DiscardMsg{} },
		func() tea.Msg { return SwitchToFormMsg{} },
	)
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, m.onCancel
		case key.Matches(msg, m.Keys.Confirm):
			return m, m.onConfirm
		}
	}
	return m, nil
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	vb := NewViewBuilder().Title("Add tax").BlankLine()
	if m.Detail != "" {
		vb.Muted(m.Detail).BlankLine()
	}
	return vb.Line(RenderConfirmPrompt(m.Question)).String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(styles.WarningMsg.Render(question))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
