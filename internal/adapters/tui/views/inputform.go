package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/tui/styles"
)

// InputField is a labelled text input that remembers whether the user
// has interacted with it and which validation error applies to it.
type InputField struct {
	Label   string
	Suffix  string
	Input   textinput.Model
	Touched bool
	Err     string
}

// NewInputField creates a new input field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// InputForm manages a set of text fields. Focused is -1 when focus sits
// outside the text fields (on a radio group, list or button).
type InputForm struct {
	Fields  []InputField
	Focused int
}

// NewInputForm creates a new input form and focuses the first field
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{Fields: fields, Focused: -1}
	form.Focus(0)
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards the message to the focused field, if any.
// Reports whether the field's value changed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if !f.valid(f.Focused) {
		return false, nil
	}

	field := &f.Fields[f.Focused]
	before := field.Input.Value()

	var cmd tea.Cmd
	field.Input, cmd = field.Input.Update(msg)

	changed := field.Input.Value() != before
	if changed {
		field.Touched = true
	}
	return changed, cmd
}

// Focus moves focus to a field by index; an out of range index blurs all fields
func (f *InputForm) Focus(index int) tea.Cmd {
	if f.valid(f.Focused) {
		f.Fields[f.Focused].Input.Blur()
		f.Fields[f.Focused].Touched = true
	}
	if !f.valid(index) {
		f.Focused = -1
		return nil
	}
	f.Focused = index
	return f.Fields[index].Input.Focus()
}

// Blur removes focus from every field
func (f *InputForm) Blur() {
	f.Focus(-1)
}

// Value returns the trimmed value of a field by index
func (f *InputForm) Value(index int) string {
	if !f.valid(index) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetError records the validation error for a field ("" clears it)
func (f *InputForm) SetError(index int, msg string) {
	if !f.valid(index) {
		return
	}
	f.Fields[index].Err = msg
}

// TouchAll marks every field as touched so that all errors show
func (f *InputForm) TouchAll() {
	for i := range f.Fields {
		f.Fields[i].Touched = true
	}
}

// Dirty reports whether any field holds a value
func (f *InputForm) Dirty() bool {
	for i := range f.Fields {
		if f.Fields[i].Input.Value() != "" {
			return true
		}
	}
	return false
}

// RenderField renders a field with its label, suffix and visible error
func (f *InputForm) RenderField(index int) string {
	if !f.valid(index) {
		return ""
	}

	field := f.Fields[index]
	showErr := field.Touched && field.Err != ""

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")

	content := field.Input.View()
	if field.Suffix != "" {
		content += " " + styles.Adornment.Render(field.Suffix)
	}

	switch {
	case showErr:
		b.WriteString(styles.InputInvalid.Render(content))
	case index == f.Focused:
		b.WriteString(styles.InputFocused.Render(content))
	default:
		b.WriteString(styles.InputField.Render(content))
	}

	if showErr {
		b.WriteString("\n")
		b.WriteString(RenderFieldError(field.Err))
	}
	return b.String()
}

func (f *InputForm) valid(index int) bool {
	return index >= 0 && index < len(f.Fields)
}
