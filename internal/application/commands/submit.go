package commands

import (
	"context"
	"fmt"

	"taxcollection/internal/application"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// SubmitTaxResult contains the result of submitting the tax form
type SubmitTaxResult struct {
	Payload domain.Payload
	Message string
}

// SubmitTaxCommand validates the form fields, composes the payload from the
// current selection and hands it to the sink.
type SubmitTaxCommand struct {
	sink      ports.PayloadSink
	catalog   *domain.Catalog
	selection domain.SelectionState
	Name      string
	Rate      string // percentage as typed, e.g. "7.5"
}

// NewSubmitTaxCommand creates a new SubmitTaxCommand
func NewSubmitTaxCommand(sink ports.PayloadSink, catalog *domain.Catalog, selection domain.SelectionState, name, rate string) *SubmitTaxCommand {
	return &SubmitTaxCommand{
		sink:      sink,
		catalog:   catalog,
		selection: selection,
		Name:      name,
		Rate:      rate,
	}
}

// Validate checks the scalar fields and returns the parsed form values
func (c *SubmitTaxCommand) Validate() (domain.FormValues, error) {
	return application.ValidateTaxForm(c.Name, c.Rate, c.selection.Mode())
}

// Preview returns the payload that Execute would submit
func (c *SubmitTaxCommand) Preview() (domain.Payload, error) {
	values, err := c.Validate()
	if err != nil {
		return domain.Payload{}, err
	}
	return domain.BuildPayload(values, c.catalog, c.selection), nil
}

// Execute runs the submit command
func (c *SubmitTaxCommand) Execute(ctx context.Context) (*SubmitTaxResult, error) {
	payload, err := c.Preview()
	if err != nil {
		return nil, err
	}

	if c.sink != nil {
		if err := c.sink.Submit(ctx, payload); err != nil {
			return nil, fmt.Errorf("failed to submit tax: %w", err)
		}
	}

	return &SubmitTaxResult{
		Payload: payload,
		Message: fmt.Sprintf("Applied %s to %d item(s)", payload.Name, len(payload.ApplicableItems)),
	}, nil
}
