// Package orders implements client-side order construction: the recursive
// order-item tree, exact minor-unit price aggregation, dispatch and payment
// variants, and the order assembler. Everything here is built fresh per
// submission and discarded once the call returns; the server remains the
// source of truth and may recompute or reject.
package orders

import (
	"fmt"

	"tableside/menu"
	"tableside/money"
)

// OrderItem is one node in an order's item tree. Choices holds one slot per
// variation of the referenced item, in the item's variation order: slot i
// corresponds to Variations[i], and the wire format relies on that
// positional correspondence. Each slot holds the selected child items, which
// are themselves full OrderItems and may carry choices of their own.
//
// An OrderItem is owned exclusively by the order that contains it. Price is
// resolved at construction time by ItemBuilder and is the only price the
// calculator consults; mutating it directly voids the order total invariant.
type OrderItem struct {
	ItemID  string       `json:"itemId"`
	Price   money.Amount `json:"price"`
	Count   int          `json:"count"`
	Comment string       `json:"comment,omitempty"`

	Variations []menu.Variation `json:"variations,omitempty"`
	Choices    [][]*OrderItem   `json:"variationsChoices"`
}

// ItemBuilder assembles a single OrderItem. It accumulates validation
// failures and reports them at Build, so a half-built item can never escape
// into an order.
type ItemBuilder struct {
	item *OrderItem
	err  error
}

// NewItemBuilder starts an order item for an item selected directly from the
// menu. The price in effect is the item's own base price.
func NewItemBuilder(item *menu.Item) *ItemBuilder {
	return newBuilder(item, item.Price)
}

// NewChoiceBuilder starts an order item for an item reached as a choice
// through the given variation. The price in effect is the variation's
// override for the item, or zero when no override exists: a choice without
// an explicit price is free.
func NewChoiceBuilder(item *menu.Item, context *menu.Variation) *ItemBuilder {
	return newBuilder(item, context.PriceOf(item.ID))
}

func newBuilder(item *menu.Item, price money.Amount) *ItemBuilder {
	node := &OrderItem{
		ItemID:     item.ID,
		Price:      price,
		Count:      1,
		Variations: item.Variations,
		Choices:    make([][]*OrderItem, len(item.Variations)),
	}
	return &ItemBuilder{item: node}
}

// Count sets the quantity. Zero and negative counts are rejected, not
// clamped.
func (b *ItemBuilder) Count(count int) *ItemBuilder {
	if count < 1 {
		b.fail(fmt.Errorf("count must be a positive integer, got %d", count))
		return b
	}
	b.item.Count = count
	return b
}

// Comment attaches a free-text comment to the item.
func (b *ItemBuilder) Comment(comment string) *ItemBuilder {
	b.item.Comment = comment
	return b
}

// AddChoice appends a selected child item to the slot at the given position.
// Slots follow the referenced item's variation order. The variation's
// declared maximum is not enforced here: the client records intent as-is and
// the server validates.
func (b *ItemBuilder) AddChoice(slot int, choice *OrderItem) *ItemBuilder {
	if slot < 0 || slot >= len(b.item.Choices) {
		b.fail(fmt.Errorf("choice slot %d out of range, item %q has %d variations",
			slot, b.item.ItemID, len(b.item.Choices)))
		return b
	}
	b.item.Choices[slot] = append(b.item.Choices[slot], choice)
	return b
}

// Build returns the finished item, or the first validation failure recorded
// along the way.
func (b *ItemBuilder) Build() (*OrderItem, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.item, nil
}

func (b *ItemBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
