package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/tui/styles"
	"taxcollection/internal/application"
	"taxcollection/internal/application/commands"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

const loadTimeout = 10 * time.Second

// TaxFormKeyMap defines key bindings for the tax form
type TaxFormKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	ModeAll  key.Binding
	ModeSome key.Binding
	Enter    key.Binding
	Submit   key.Binding
	Reload   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

var TaxFormKeys = TaxFormKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	ModeAll: key.NewBinding(
		key.WithKeys("a"),
	),
	ModeSome: key.NewBinding(
		key.WithKeys("s"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "apply"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy json"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// formFocus is the part of the form receiving keys
type formFocus int

const (
	focusName formFocus = iota
	focusRate
	focusMode
	focusItems
	focusSubmit
)

// Text field indexes in the input form
const (
	fieldName = 0
	fieldRate = 1
)

// checkRow is one line of the item checklist: a category header or an item
type checkRow struct {
	header bool
	key    domain.CategoryKey
	label  string
	id     domain.ID
}

// TaxFormModel is the model for the add tax form
type TaxFormModel struct {
	ViewState
	source    ports.CatalogSource
	sink      ports.PayloadSink
	clipboard ports.PayloadSink

	form      *InputForm
	focus     formFocus
	catalog   *domain.Catalog
	describe  string
	selection domain.SelectionState
	rows      []checkRow
	paginator *Paginator

	loading          bool
	selectionTouched bool
}

// NewTaxFormModel creates the form. clipboard may be nil when no clipboard
// is available.
func NewTaxFormModel(source ports.CatalogSource, sink, clipboard ports.PayloadSink) *TaxFormModel {
	name := NewInputField("Tax name", "e.g. Sales tax", 64)
	rate := NewInputField("Rate", "0", 12)
	rate.Suffix = "%"

	m := &TaxFormModel{
		source:    source,
		sink:      sink,
		clipboard: clipboard,
		form:      NewInputForm(name, rate),
		focus:     focusName,
		selection: domain.NewSelection(),
		paginator: NewPaginator(10),
		loading:   true,
	}
	m.validate()
	return m
}

// Init starts the cursor blink and the first catalog load
func (m *TaxFormModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.loadCatalog())
}

func (m *TaxFormModel) loadCatalog() tea.Cmd {
	list := commands.NewListCatalogCommand(m.source)
	describe := m.source.Describe()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		result, err := list.Execute(ctx)
		if err != nil {
			return CatalogErrMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: result.Catalog, Source: describe}
	}
}

// Update handles messages for the tax form
func (m *TaxFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case CatalogLoadedMsg:
		reloaded := m.catalog != nil
		m.SetCatalog(msg.Catalog)
		m.describe = msg.Source
		if reloaded {
			m.SetMessage(fmt.Sprintf("Reloaded %d item(s)", msg.Catalog.Len()), false)
		}
		return m, nil

	case CatalogErrMsg:
		m.loading = false
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case SubmitErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else {
			m.SetMessage("Copied payload to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Blink and other input messages go to the focused field
	if m.textFocused() {
		_, cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *TaxFormModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, TaxFormKeys.Quit):
		return tea.Quit

	case key.Matches(msg, TaxFormKeys.Cancel):
		if m.Dirty() {
			return func() tea.Msg { return SwitchToDiscardMsg{} }
		}
		return func() tea.Msg { return DiscardMsg{} }

	case key.Matches(msg, TaxFormKeys.Submit):
		return m.submit()

	case key.Matches(msg, TaxFormKeys.Reload):
		m.SetMessage("Reloading catalog...", false)
		return m.loadCatalog()

	case key.Matches(msg, TaxFormKeys.Copy):
		return m.copy()

	case key.Matches(msg, TaxFormKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, TaxFormKeys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, TaxFormKeys.Prev):
		return m.moveFocus(-1)
	}

	m.ClearMessage()

	switch m.focus {
	case focusName, focusRate:
		if key.Matches(msg, TaxFormKeys.Enter) {
			return m.moveFocus(1)
		}
		changed, cmd := m.form.Update(msg)
		if changed {
			m.validate()
		}
		return cmd

	case focusMode:
		switch {
		case key.Matches(msg, TaxFormKeys.Left), key.Matches(msg, TaxFormKeys.ModeAll):
			m.SetMode(domain.ModeAll)
		case key.Matches(msg, TaxFormKeys.Right), key.Matches(msg, TaxFormKeys.ModeSome):
			m.SetMode(domain.ModeSome)
		case key.Matches(msg, TaxFormKeys.Toggle):
			if m.selection.Mode() == domain.ModeAll {
				m.SetMode(domain.ModeSome)
			} else {
				m.SetMode(domain.ModeAll)
			}
		case key.Matches(msg, TaxFormKeys.Enter):
			return m.moveFocus(1)
		case msg.String() == "?":
			return func() tea.Msg { return SwitchToHelpMsg{} }
		}

	case focusItems:
		switch {
		case key.Matches(msg, TaxFormKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, TaxFormKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, TaxFormKeys.Toggle):
			m.ToggleAtCursor()
		case key.Matches(msg, TaxFormKeys.Enter):
			return m.moveFocus(1)
		case msg.String() == "?":
			return func() tea.Msg { return SwitchToHelpMsg{} }
		}

	case focusSubmit:
		switch {
		case key.Matches(msg, TaxFormKeys.Enter), key.Matches(msg, TaxFormKeys.Toggle):
			return m.submit()
		case msg.String() == "?":
			return func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return nil
}

// moveFocus cycles through the form, skipping the checklist when it is hidden
func (m *TaxFormModel) moveFocus(delta int) tea.Cmd {
	const areas = int(focusSubmit) + 1

	next := m.focus
	for range areas {
		next = formFocus((int(next) + delta + areas) % areas)
		if next != focusItems || m.itemsVisible() {
			break
		}
	}
	return m.setFocus(next)
}

func (m *TaxFormModel) setFocus(f formFocus) tea.Cmd {
	m.focus = f
	defer m.validate()

	switch f {
	case focusName:
		return m.form.Focus(fieldName)
	case focusRate:
		return m.form.Focus(fieldRate)
	default:
		m.form.Blur()
		return nil
	}
}

func (m *TaxFormModel) textFocused() bool {
	return m.focus == focusName || m.focus == focusRate
}

func (m *TaxFormModel) itemsVisible() bool {
	return m.selection.Mode() == domain.ModeSome && len(m.rows) > 0
}

// validate refreshes the inline field errors and returns the form error
func (m *TaxFormModel) validate() error {
	_, err := application.ValidateTaxForm(m.form.Value(fieldName), m.form.Value(fieldRate), m.selection.Mode())

	var errs application.ValidationErrors
	errors.As(err, &errs)
	m.form.SetError(fieldName, errs.Field(application.FieldName))
	m.form.SetError(fieldRate, errs.Field(application.FieldRate))
	return err
}

// checkForm shows every field error and focuses the first invalid field.
// Returns false if the form cannot be submitted yet.
func (m *TaxFormModel) checkForm() bool {
	if m.catalog == nil {
		m.SetMessage("Catalog is not loaded yet", true)
		return false
	}

	m.form.TouchAll()
	if err := m.validate(); err != nil {
		m.SetMessage("Fix the highlighted fields", true)
		for i, f := range m.form.Fields {
			if f.Err != "" {
				m.setFocus(formFocus(i))
				break
			}
		}
		return false
	}
	return true
}

func (m *TaxFormModel) command(sink ports.PayloadSink) *commands.SubmitTaxCommand {
	return commands.NewSubmitTaxCommand(sink, m.catalog, m.selection,
		m.form.Value(fieldName), m.form.Value(fieldRate))
}

func (m *TaxFormModel) submit() tea.Cmd {
	if !m.checkForm() {
		return nil
	}

	cmd := m.command(m.sink)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return SubmitErrMsg{Err: err}
		}
		return SubmittedMsg{Payload: result.Payload, Message: result.Message}
	}
}

func (m *TaxFormModel) copy() tea.Cmd {
	if m.clipboard == nil {
		m.SetMessage("Clipboard is not available", true)
		return nil
	}
	if !m.checkForm() {
		return nil
	}

	cmd := m.command(m.clipboard)
	return func() tea.Msg {
		_, err := cmd.Execute(context.Background())
		return CopiedMsg{Err: err}
	}
}

// SetCatalog installs a newly loaded catalog and reconciles the selection
func (m *TaxFormModel) SetCatalog(c *domain.Catalog) {
	m.loading = false
	m.catalog = c
	m.selection = domain.OnCatalogChange(c, m.selection)
	m.rows = buildRows(c)
	m.paginator.SetTotal(len(m.rows))

	if m.focus == focusItems && !m.itemsVisible() {
		m.setFocus(focusSubmit)
	}
}

// SetMode switches between applying to all items and a manual selection
func (m *TaxFormModel) SetMode(mode domain.Mode) {
	if m.selection.Mode() == mode {
		return
	}
	m.selection = domain.SetMode(m.catalog, m.selection, mode)
	m.selectionTouched = true
}

// ToggleAtCursor flips the row under the cursor. A category row checks
// every item in it unless all of them are already checked.
func (m *TaxFormModel) ToggleAtCursor() {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.rows) {
		return
	}

	row := m.rows[i]
	if row.header {
		checked := !domain.CategoryChecked(m.catalog, m.selection, row.key)
		m.selection = domain.ToggleCategory(m.catalog, m.selection, row.key, checked)
	} else {
		m.selection = domain.ToggleItem(m.catalog, m.selection, row.id, !m.selection.IsSelected(row.id))
	}
	m.selectionTouched = true
}

// Dirty reports whether the user has entered anything worth confirming
// before it is thrown away.
func (m *TaxFormModel) Dirty() bool {
	return m.form.Dirty() || m.selectionTouched
}

// Selection returns the current selection state
func (m *TaxFormModel) Selection() domain.SelectionState {
	return m.selection
}

// Catalog returns the catalog the form is working against
func (m *TaxFormModel) Catalog() *domain.Catalog {
	return m.catalog
}

// SetSize updates the view dimensions and the checklist window
func (m *TaxFormModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Title, fields, radio, button and help take about 20 lines
	m.paginator.SetPageSize(max(height-20, 3))
}

func buildRows(c *domain.Catalog) []checkRow {
	var rows []checkRow
	for _, g := range c.Groups() {
		label := g.Label()
		if label == "" {
			label = "Other"
		}
		rows = append(rows, checkRow{header: true, key: g.Key, label: label})
		for _, item := range g.Items {
			rows = append(rows, checkRow{key: g.Key, label: item.Name, id: item.ID})
		}
	}
	return rows
}

// Summary describes the form contents in one line
func (m *TaxFormModel) Summary() string {
	name := m.form.Value(fieldName)
	if name == "" {
		name = "Unnamed tax"
	}
	rate := m.form.Value(fieldRate)
	if rate == "" {
		rate = "0"
	}
	return fmt.Sprintf("%s at %s%% on %d item(s)", name, rate, m.selection.Count())
}

// SubmitLabel is the text of the submit button
func (m *TaxFormModel) SubmitLabel() string {
	return fmt.Sprintf("Apply tax to %d item(s)", m.selection.Count())
}

// View renders the tax form
func (m *TaxFormModel) View() string {
	vb := NewViewBuilder().Title("Add tax")

	switch {
	case m.loading:
		vb.Subtitle("Loading catalog...")
	case m.describe != "":
		vb.Subtitle(fmt.Sprintf("%d item(s) from %s", m.catalog.Len(), m.describe))
	default:
		vb.BlankLine()
	}

	vb.Line(m.form.RenderField(fieldName)).
		Line(m.form.RenderField(fieldRate)).
		BlankLine().
		Section("Apply to").
		Line(m.renderModes()).
		BlankLine()

	if m.selection.Mode() == domain.ModeSome {
		vb.Raw(m.renderChecklist()).BlankLine()
	}

	vb.Line(RenderButton(m.SubmitLabel(), m.focus == focusSubmit)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(TaxFormKeys.Next, TaxFormKeys.Toggle, TaxFormKeys.Submit,
			TaxFormKeys.Reload, TaxFormKeys.Copy, TaxFormKeys.Help, TaxFormKeys.Cancel)

	return vb.String()
}

func (m *TaxFormModel) renderModes() string {
	mode := m.selection.Mode()
	all := styles.Radio(mode == domain.ModeAll) + "All items"
	some := styles.Radio(mode == domain.ModeSome) + "Some items"

	line := "  " + all + "    " + some
	if m.focus == focusMode {
		return styles.RowCursor.Render(line)
	}
	return line
}

func (m *TaxFormModel) renderChecklist() string {
	if len(m.rows) == 0 {
		return styles.MutedText.Render("  No items in the catalog") + "\n"
	}

	var b strings.Builder
	above, below := m.paginator.HasMore()
	if above {
		b.WriteString(styles.MutedText.Render("  ↑ more"))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.paginator.Cursor()))
		b.WriteString("\n")
	}

	if below {
		b.WriteString(styles.MutedText.Render("  ↓ more"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *TaxFormModel) renderRow(row checkRow, atCursor bool) string {
	var text string
	style := styles.ItemRow
	if row.header {
		text = "  " + styles.Checkbox(domain.CategoryChecked(m.catalog, m.selection, row.key)) + row.label
		style = styles.CategoryHeader
	} else {
		text = "      " + styles.Checkbox(m.selection.IsSelected(row.id)) + row.label
	}

	if atCursor && m.focus == focusItems {
		return styles.RowCursor.Render(text)
	}
	return style.Render(text)
}
