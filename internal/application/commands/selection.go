package commands

import "taxcollection/internal/domain"

// SelectionRequest describes a selection non-interactively, as the CLI and
// the MCP tools receive it.
type SelectionRequest struct {
	Mode          domain.Mode
	CategoryIDs   []domain.ID
	Uncategorized bool
	ItemIDs       []domain.ID
}

// Apply replays the request against the catalog the way a user would:
// mode first, then whole categories, then single items.
func (r SelectionRequest) Apply(c *domain.Catalog) domain.SelectionState {
	s := domain.SetMode(c, domain.NewSelection(), r.Mode)
	if r.Mode == domain.ModeAll {
		return s
	}

	for _, id := range r.CategoryIDs {
		s = domain.ToggleCategory(c, s, domain.KeyFor(id), true)
	}
	if r.Uncategorized {
		s = domain.ToggleCategory(c, s, domain.Uncategorized, true)
	}
	for _, id := range r.ItemIDs {
		s = domain.ToggleItem(c, s, id, true)
	}
	return s
}
