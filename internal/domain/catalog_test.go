package domain

import (
	"encoding/json"
	"testing"
)

func TestNewCatalog_DropsDuplicateIDs(t *testing.T) {
	c := NewCatalog([]Item{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
		{ID: 1, Name: "shadowed"},
	})

	if c.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", c.Len())
	}
	item, ok := c.Item(1)
	if !ok {
		t.Fatal("expected item 1 to be present")
	}
	if item.Name != "first" {
		t.Errorf("expected first occurrence to win, got %q", item.Name)
	}
}

func TestNewCatalog_CopiesCategories(t *testing.T) {
	cat := &Category{ID: 5, Name: "Rings"}
	c := NewCatalog([]Item{{ID: 1, Name: "Ring", Category: cat}})

	cat.Name = "Changed"

	item, _ := c.Item(1)
	if item.Category.Name != "Rings" {
		t.Errorf("catalog should not observe caller mutations, got %q", item.Category.Name)
	}
}

func TestCatalog_Groups(t *testing.T) {
	a := &Category{ID: 10, Name: "Bracelets"}
	b := &Category{ID: 20, Name: "Earrings"}
	c := NewCatalog([]Item{
		{ID: 1, Name: "Loose item"},
		{ID: 2, Name: "Bracelet", Category: a},
		{ID: 3, Name: "Earring", Category: b},
		{ID: 4, Name: "Another bracelet", Category: a},
		{ID: 5, Name: "Another loose item"},
	})

	groups := c.Groups()

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	tests := []struct {
		key   CategoryKey
		label string
		ids   []ID
	}{
		{Uncategorized, "", []ID{1, 5}},
		{KeyFor(10), "Bracelets", []ID{2, 4}},
		{KeyFor(20), "Earrings", []ID{3}},
	}

	for i, tt := range tests {
		g := groups[i]
		if g.Key != tt.key {
			t.Errorf("group %d: expected key %+v, got %+v", i, tt.key, g.Key)
		}
		if g.Label() != tt.label {
			t.Errorf("group %d: expected label %q, got %q", i, tt.label, g.Label())
		}
		if len(g.Items) != len(tt.ids) {
			t.Errorf("group %d: expected %d items, got %d", i, len(tt.ids), len(g.Items))
			continue
		}
		for j, id := range tt.ids {
			if g.Items[j].ID != id {
				t.Errorf("group %d item %d: expected id %d, got %d", i, j, id, g.Items[j].ID)
			}
		}
	}
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog

	if c.Len() != 0 {
		t.Errorf("expected empty length, got %d", c.Len())
	}
	if c.Contains(1) {
		t.Error("nil catalog should contain nothing")
	}
	if len(c.Groups()) != 0 {
		t.Error("nil catalog should have no groups")
	}
}

func TestBuildPayload(t *testing.T) {
	a := &Category{ID: 10, Name: "A"}
	c := NewCatalog([]Item{
		{ID: 1, Name: "one", Category: a},
		{ID: 2, Name: "two", Category: a},
		{ID: 3, Name: "three"},
	})

	s := ToggleCategory(c, NewSelection(), KeyFor(10), true)
	s = ToggleItem(c, s, 3, true)

	p := BuildPayload(FormValues{Name: "VAT", Rate: 7.5, AppliedTo: ModeSome}, c, s)

	if p.Name != "VAT" {
		t.Errorf("expected name VAT, got %q", p.Name)
	}
	if p.Rate != 0.075 {
		t.Errorf("expected rate 0.075, got %v", p.Rate)
	}
	if p.AppliedTo != ModeSome {
		t.Errorf("expected applied_to some, got %q", p.AppliedTo)
	}
	want := []ID{1, 2, 3}
	if len(p.ApplicableItems) != len(want) {
		t.Fatalf("expected %v, got %v", want, p.ApplicableItems)
	}
	for i := range want {
		if p.ApplicableItems[i] != want[i] {
			t.Errorf("expected %v, got %v", want, p.ApplicableItems)
		}
	}
}

func TestBuildPayload_EmptySelectionEncodesAsArray(t *testing.T) {
	p := BuildPayload(FormValues{Name: "None", Rate: 0}, NewCatalog(nil), NewSelection())

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"name":"None","rate":0,"applied_to":"some","applicable_items":[]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestBuildPayload_ModeFallsBackToSelection(t *testing.T) {
	c := NewCatalog([]Item{{ID: 1, Name: "one"}, {ID: 2, Name: "two"}})
	s := SetMode(c, NewSelection(), ModeAll)

	p := BuildPayload(FormValues{Name: "VAT", Rate: 5}, c, s)
	if p.AppliedTo != ModeAll {
		t.Errorf("expected applied_to all, got %q", p.AppliedTo)
	}

	s = ToggleItem(c, s, 2, false)
	p = BuildPayload(FormValues{Name: "VAT", Rate: 5, AppliedTo: s.Mode()}, c, s)
	if p.AppliedTo != ModeSome || len(p.ApplicableItems) != 1 {
		t.Errorf("expected some with one item, got %q %v", p.AppliedTo, p.ApplicableItems)
	}
}
