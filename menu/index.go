package menu

import "strings"

// Index provides O(1) item lookup over a menu's flat item list. It is built
// once per snapshot and never mutated afterwards, so it is safe for
// concurrent use.
type Index struct {
	items []Item
	byID  map[string]*Item
}

// NewIndex builds an index from a flat item list. Later duplicates of an id
// win, matching the server's own de-duplication.
func NewIndex(items []Item) *Index {
	ix := &Index{
		items: items,
		byID:  make(map[string]*Item, len(items)),
	}
	for i := range items {
		ix.byID[items[i].ID] = &items[i]
	}
	return ix
}

// Lookup returns the item with the given id. The second return value is
// false when the id is unknown; order construction tolerates dangling ids,
// so a miss is not an error here.
func (ix *Index) Lookup(id string) (*Item, bool) {
	item, ok := ix.byID[id]
	return item, ok
}

// Search returns all items whose title matches text, case-insensitively, in
// any locale, preserving menu order.
func (ix *Index) Search(text string) []Item {
	needle := strings.ToLower(text)
	var results []Item
	for _, item := range ix.items {
		if titleMatches(item.Title, needle) {
			results = append(results, item)
		}
	}
	return results
}

// FindFirst returns the first item whose title matches text, or nil if none
// does.
func (ix *Index) FindFirst(text string) *Item {
	needle := strings.ToLower(text)
	for i := range ix.items {
		if titleMatches(ix.items[i].Title, needle) {
			return &ix.items[i]
		}
	}
	return nil
}

func titleMatches(title LocalizedString, lowerNeedle string) bool {
	for _, text := range title {
		if strings.Contains(strings.ToLower(text), lowerNeedle) {
			return true
		}
	}
	return false
}
