package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taxcollection/internal/adapters/memory"
	"taxcollection/internal/adapters/tui/views"
	"taxcollection/internal/domain"
)

func newTestApp() *App {
	return NewApp(memory.NewSampleSource(), nil, nil)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_SwitchViews(t *testing.T) {
	a := newTestApp()

	a.Update(views.SwitchToHelpMsg{})
	if a.state != ViewHelp {
		t.Errorf("expected help view, got %d", a.state)
	}

	a.Update(views.SwitchToDiscardMsg{})
	if a.state != ViewDiscard {
		t.Errorf("expected discard view, got %d", a.state)
	}

	a.Update(views.SwitchToFormMsg{})
	if a.state != ViewForm {
		t.Errorf("expected form view, got %d", a.state)
	}
}

func TestApp_SubmittedQuitsWithPayload(t *testing.T) {
	a := newTestApp()
	p := domain.Payload{Name: "VAT", Rate: 0.2, AppliedTo: domain.ModeAll, ApplicableItems: []domain.ID{1}}

	_, cmd := a.Update(views.SubmittedMsg{Payload: p, Message: "Applied VAT to 1 item(s)"})
	if !isQuit(cmd) {
		t.Fatal("expected quit after submission")
	}
	if a.Payload() == nil || a.Payload().Name != "VAT" {
		t.Errorf("expected stored payload, got %+v", a.Payload())
	}
	if a.Result() != "Applied VAT to 1 item(s)" {
		t.Errorf("unexpected result %q", a.Result())
	}
}

func TestApp_DiscardQuitsWithoutPayload(t *testing.T) {
	a := newTestApp()

	_, cmd := a.Update(views.DiscardMsg{})
	if !isQuit(cmd) {
		t.Fatal("expected quit after discard")
	}
	if a.Payload() != nil {
		t.Error("discarded form should have no payload")
	}
}

func TestApp_DiscardConfirmation(t *testing.T) {
	a := newTestApp()
	a.Update(views.SwitchToDiscardMsg{})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if _, ok := cmd().(views.SwitchToFormMsg); !ok {
		t.Errorf("expected n to return to the form, got %T", cmd())
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if _, ok := cmd().(views.DiscardMsg); !ok {
		t.Errorf("expected y to discard, got %T", cmd())
	}
}

func TestApp_DiscardShowsFormSummary(t *testing.T) {
	a := newTestApp()
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("VAT")})
	a.Update(views.SwitchToDiscardMsg{})

	if got := a.View(); !strings.Contains(got, "VAT at 0% on 0 item(s)") {
		t.Errorf("expected form summary in discard prompt, got:\n%s", got)
	}
}

func TestApp_CatalogReachesFormFromHelp(t *testing.T) {
	a := newTestApp()
	a.Update(views.SwitchToHelpMsg{})

	c := domain.NewCatalog(memory.SampleItems())
	a.Update(views.CatalogLoadedMsg{Catalog: c, Source: "sample"})

	if a.form.Catalog() != c {
		t.Error("catalog should reach the form while help is shown")
	}
}

func TestApp_CtrlCQuitsEverywhere(t *testing.T) {
	a := newTestApp()
	a.Update(views.SwitchToHelpMsg{})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("expected ctrl+c to quit from help")
	}
}
