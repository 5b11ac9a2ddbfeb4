package domain

// FormValues holds the validated scalar fields of the tax form
type FormValues struct {
	Name      string
	Rate      float64 // percentage, e.g. 7.5
	AppliedTo Mode
}

// Payload is the record handed over on submission
type Payload struct {
	Name            string  `json:"name"`
	Rate            float64 `json:"rate"` // fraction, e.g. 0.075
	AppliedTo       Mode    `json:"applied_to"`
	ApplicableItems []ID    `json:"applicable_items"`
}

// BuildPayload composes the submission record. The rate is converted from a
// percentage to a fraction and the selected IDs are listed in catalog order.
// v.AppliedTo is copied as given, so callers pass s.Mode() to keep the two
// consistent; an empty AppliedTo falls back to s.Mode().
func BuildPayload(v FormValues, c *Catalog, s SelectionState) Payload {
	appliedTo := v.AppliedTo
	if appliedTo == "" {
		appliedTo = s.Mode()
	}
	return Payload{
		Name:            v.Name,
		Rate:            v.Rate / 100,
		AppliedTo:       appliedTo,
		ApplicableItems: s.Selected(c),
	}
}
