package domain

import "fmt"

// Mode is the apply-to choice of a tax
type Mode string

const (
	ModeAll  Mode = "all"
	ModeSome Mode = "some"
)

// ParseMode converts the string form of a mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll:
		return ModeAll, nil
	case ModeSome, "":
		return ModeSome, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected all or some)", s)
	}
}

// SelectionState is the set of selected item IDs plus the select-all flag.
// It is a value: every operation below returns a new state and leaves its
// input untouched. The zero value is an empty selection in "some" mode.
type SelectionState struct {
	selected  map[ID]struct{}
	SelectAll bool
}

// NewSelection returns an empty selection
func NewSelection() SelectionState {
	return SelectionState{selected: map[ID]struct{}{}}
}

func (s SelectionState) clone() SelectionState {
	next := SelectionState{
		selected:  make(map[ID]struct{}, len(s.selected)),
		SelectAll: s.SelectAll,
	}
	for id := range s.selected {
		next.selected[id] = struct{}{}
	}
	return next
}

// Mode returns the apply-to mode implied by the state
func (s SelectionState) Mode() Mode {
	if s.SelectAll {
		return ModeAll
	}
	return ModeSome
}

// IsSelected reports whether id is selected
func (s SelectionState) IsSelected(id ID) bool {
	_, ok := s.selected[id]
	return ok
}

// Count returns the number of selected items
func (s SelectionState) Count() int {
	return len(s.selected)
}

// Selected returns the selected IDs in catalog order
func (s SelectionState) Selected(c *Catalog) []ID {
	ids := make([]ID, 0, len(s.selected))
	for _, id := range c.IDs() {
		if s.IsSelected(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ToggleItem adds or removes a single item. IDs outside the catalog are
// ignored. Removing an item leaves select-all mode.
func ToggleItem(c *Catalog, s SelectionState, id ID, checked bool) SelectionState {
	if !c.Contains(id) {
		return s
	}
	next := s.clone()
	if checked {
		next.selected[id] = struct{}{}
	} else {
		delete(next.selected, id)
		next.SelectAll = false
	}
	return next
}

// ToggleCategory adds or removes every item in the bucket identified by key.
// Removing a bucket leaves select-all mode. Empty or unknown buckets are
// ignored.
func ToggleCategory(c *Catalog, s SelectionState, key CategoryKey, checked bool) SelectionState {
	ids := c.IDsIn(key)
	if len(ids) == 0 {
		return s
	}
	next := s.clone()
	for _, id := range ids {
		if checked {
			next.selected[id] = struct{}{}
		} else {
			delete(next.selected, id)
		}
	}
	if !checked {
		next.SelectAll = false
	}
	return next
}

// CategoryChecked reports whether every item of the bucket is selected.
// An empty bucket is checked.
func CategoryChecked(c *Catalog, s SelectionState, key CategoryKey) bool {
	for _, id := range c.IDsIn(key) {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

// SetMode switches between applying to all items and to a chosen subset.
// Entering ModeAll selects the whole catalog; ModeSome keeps the current
// selection as it is.
func SetMode(c *Catalog, s SelectionState, mode Mode) SelectionState {
	if mode == ModeAll {
		return selectAll(c)
	}
	next := s.clone()
	next.SelectAll = false
	return next
}

// OnCatalogChange re-syncs the selection with a new catalog. In select-all
// mode the selection becomes the full new catalog; otherwise IDs that left
// the catalog are dropped. Calling it again with the same catalog is a no-op.
func OnCatalogChange(c *Catalog, s SelectionState) SelectionState {
	if s.SelectAll {
		return selectAll(c)
	}
	next := s.clone()
	for id := range next.selected {
		if !c.Contains(id) {
			delete(next.selected, id)
		}
	}
	return next
}

func selectAll(c *Catalog) SelectionState {
	next := SelectionState{
		selected:  make(map[ID]struct{}, c.Len()),
		SelectAll: true,
	}
	for _, id := range c.IDs() {
		next.selected[id] = struct{}{}
	}
	return next
}
