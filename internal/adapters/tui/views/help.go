package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?", "f1"),
		key.WithHelp("esc/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToFormMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add tax: help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Moving around"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab / shift+tab", "Next / previous field"))
	b.WriteString(helpLine("↑ / ↓", "Move within the item list"))
	b.WriteString(helpLine("← / → / a / s", "Apply to All items or Some items"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Selecting items"))
	b.WriteString("\n")
	b.WriteString(helpLine("space / x", "Toggle the item or category under the cursor"))
	b.WriteString(helpLine("ctrl+r", "Reload the catalog"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Finishing"))
	b.WriteString("\n")
	b.WriteString(helpLine("ctrl+s", "Apply the tax"))
	b.WriteString(helpLine("ctrl+y", "Copy the payload as JSON"))
	b.WriteString(helpLine("esc", "Discard the form"))
	b.WriteString(helpLine("f1 / ?", "This help (? outside text fields)"))
	b.WriteString(helpLine("ctrl+c", "Quit immediately"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Checking a category checks every item in it. A category is"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("shown checked only when all of its items are."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 18)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
