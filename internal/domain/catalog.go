package domain

// ID identifies an item or a category
type ID int64

// Category is a named grouping of items
type Category struct {
	ID   ID     `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Item is a catalog entry a tax may apply to.
// A nil Category places the item in the uncategorized bucket.
type Item struct {
	ID       ID        `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Category *Category `json:"category" yaml:"category"`
}

// CategoryKey identifies a category bucket.
// The zero value (Valid == false) is the synthetic uncategorized bucket.
type CategoryKey struct {
	ID    ID
	Valid bool
}

// Uncategorized is the key of the bucket holding items without a category
var Uncategorized = CategoryKey{}

// KeyFor returns the key of the given category
func KeyFor(id ID) CategoryKey {
	return CategoryKey{ID: id, Valid: true}
}

// Key returns the bucket key the item belongs to
func (i Item) Key() CategoryKey {
	if i.Category == nil {
		return Uncategorized
	}
	return KeyFor(i.Category.ID)
}

// CategoryGroup is a derived partition of the catalog by category
type CategoryGroup struct {
	Key      CategoryKey
	Category Category // zero for the uncategorized bucket
	Items    []Item
}

// Label returns the display name of the group
func (g CategoryGroup) Label() string {
	if !g.Key.Valid {
		return ""
	}
	return g.Category.Name
}

// Catalog is an immutable, ordered list of items.
// Each call to NewCatalog yields a distinct catalog reference.
type Catalog struct {
	items []Item
	index map[ID]int
}

// NewCatalog builds a catalog from items, keeping the first occurrence of
// any duplicated ID.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[ID]int, len(items)),
	}
	for _, item := range items {
		if _, dup := c.index[item.ID]; dup {
			continue
		}
		if item.Category != nil {
			cat := *item.Category
			item.Category = &cat
		}
		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c
}

// Len returns the number of items
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the catalog items in order
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Contains reports whether id is part of the catalog
func (c *Catalog) Contains(id ID) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// Item looks up an item by ID
func (c *Catalog) Item(id ID) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// IDs returns every item ID in catalog order
func (c *Catalog) IDs() []ID {
	if c == nil {
		return nil
	}
	ids := make([]ID, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

// IDsIn returns the IDs of the items in the given bucket, in catalog order
func (c *Catalog) IDsIn(key CategoryKey) []ID {
	if c == nil {
		return nil
	}
	var ids []ID
	for _, item := range c.items {
		if item.Key() == key {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Groups partitions the catalog by category, preserving the order in which
// categories are first seen.
func (c *Catalog) Groups() []CategoryGroup {
	if c == nil {
		return nil
	}
	var groups []CategoryGroup
	pos := make(map[CategoryKey]int)
	for _, item := range c.items {
		key := item.Key()
		i, ok := pos[key]
		if !ok {
			g := CategoryGroup{Key: key}
			if item.Category != nil {
				g.Category = *item.Category
			}
			i = len(groups)
			pos[key] = i
			groups = append(groups, g)
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
