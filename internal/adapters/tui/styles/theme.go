package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Form fields
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputInvalid = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1)

	Adornment = lipgloss.NewStyle().
			Foreground(Muted)

	FieldError = lipgloss.NewStyle().
			Foreground(Error)

	// Checkbox tree
	CategoryHeader = lipgloss.NewStyle().
			Bold(true)

	ItemRow = lipgloss.NewStyle()

	RowCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Checked   = "[x] "
	Unchecked = "[ ] "

	RadioOn  = "(•) "
	RadioOff = "( ) "

	// Submit button
	Button = lipgloss.NewStyle().
		Foreground(White).
		Background(Muted).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// Checkbox returns the checkbox marker for a row
func Checkbox(checked bool) string {
	if checked {
		return Checked
	}
	return Unchecked
}

// Radio returns the radio marker for an option
func Radio(on bool) string {
	if on {
		return RadioOn
	}
	return RadioOff
}
