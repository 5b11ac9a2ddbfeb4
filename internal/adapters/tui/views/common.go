package views

import "taxcollection/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// CatalogLoadedMsg carries a freshly loaded catalog
type CatalogLoadedMsg struct {
	Catalog *domain.Catalog
	Source  string
}

// CatalogErrMsg reports a failed catalog load
type CatalogErrMsg struct {
	Err error
}

// SubmittedMsg is sent once the payload has been handed to the sink
type SubmittedMsg struct {
	Payload domain.Payload
	Message string
}

// SubmitErrMsg reports a failed submission
type SubmitErrMsg struct {
	Err error
}

// CopiedMsg reports the outcome of a clipboard copy
type CopiedMsg struct {
	Err error
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToFormMsg struct{}

type SwitchToDiscardMsg struct{}

// DiscardMsg ends the session without submitting
type DiscardMsg struct{}
