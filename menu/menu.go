// Package menu models the read-only menu snapshot the platform returns:
// items, their variations (option groups), and the section hierarchy, plus
// an id index for order construction. A snapshot is immutable once loaded
// and is discarded together with the menu it came from.
package menu

import (
	"tableside/money"
)

// Item is a single orderable dish or drink. The server returns items as one
// flat collection; nesting is expressed through variations referencing other
// items by id.
type Item struct {
	ID          string          `json:"id"`
	Title       LocalizedString `json:"title,omitempty"`
	Description LocalizedString `json:"description,omitempty"`
	// Price is the item's base price in minor units. When the item is
	// selected as a choice under a variation, the variation's override (or
	// zero) applies instead.
	Price      money.Amount      `json:"price"`
	Variations []Variation       `json:"variations,omitempty"`
	Media      map[string]string `json:"media,omitempty"`
}

// Variation is a named option group on an item, e.g. "Size" or "Toppings".
type Variation struct {
	ID    string          `json:"id,omitempty"`
	Title LocalizedString `json:"title,omitempty"`
	// ItemIDs lists the selectable child items, in menu order.
	ItemIDs []string `json:"itemIds"`
	// Prices holds per-child price overrides in minor units. Children with
	// no entry are free when chosen through this variation.
	Prices        map[string]money.Amount `json:"prices,omitempty"`
	MinNumAllowed int                     `json:"minNumAllowed,omitempty"`
	MaxNumAllowed int                     `json:"maxNumAllowed,omitempty"`
}

// PriceOf returns the price of the given child item as a choice under this
// variation: the override if one exists, zero otherwise.
func (v *Variation) PriceOf(itemID string) money.Amount {
	if override, ok := v.Prices[itemID]; ok {
		return override
	}
	return money.Zero
}

// Menu is a full menu snapshot: the flat item list plus the section
// hierarchy that arranges it for display.
type Menu struct {
	Items    []Item    `json:"items"`
	Sections []Section `json:"sections,omitempty"`
}

// Section is a node in the menu's display hierarchy. Leaf sections list
// item ids; inner sections list child sections.
type Section struct {
	ID       string          `json:"id,omitempty"`
	Title    LocalizedString `json:"title,omitempty"`
	ItemIDs  []string        `json:"itemIds,omitempty"`
	Children []Section       `json:"children,omitempty"`
}
