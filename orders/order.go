package orders

import (
	"tableside/customers"
	"tableside/money"
)

// Order statuses assigned by the platform.
const (
	StatusNew      = "new"
	StatusAccepted = "accepted"
	StatusCanceled = "canceled"
)

// Order is a priced order aggregate, ready for submission. It owns all of
// its order items transitively. Price always equals the sum of the items'
// recursive prices plus the dispatch charge; OrderBuilder is the only
// writer, and there is no remove operation. A caller that needs to change a
// selection builds a fresh order.
type Order struct {
	// Server-assigned fields, empty until the order is submitted.
	ID         string `json:"id,omitempty"`
	Status     string `json:"status,omitempty"`
	OwnerToken string `json:"ownerToken,omitempty"`
	Created    int64  `json:"created,omitempty"`
	Modified   int64  `json:"modified,omitempty"`

	Developer    string `json:"developer,omitempty"`
	Source       string `json:"source,omitempty"`
	Platform     string `json:"platform,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
	Locale       string `json:"locale,omitempty"`
	// Currency is an ISO 4217 code. It is carried as-is; cross-currency
	// mismatches against item prices are a server-side validation concern.
	Currency   string             `json:"currency,omitempty"`
	Contact    *customers.Contact `json:"contact,omitempty"`
	Dispatch   *Dispatch          `json:"delivery,omitempty"`
	Items      []*OrderItem       `json:"orderItems"`
	Payments   []Payment          `json:"payments,omitempty"`
	Comment    string             `json:"comment,omitempty"`
	Price      money.Amount       `json:"price"`
	Properties map[string]string  `json:"properties,omitempty"`
}

// OrderBuilder accumulates line items, dispatch charge, and payments into a
// priced order. Item prices are computed once on AddItem, already scaled by
// quantity; the builder only ever adds to the running total.
type OrderBuilder struct {
	order Order
}

// NewOrderBuilder starts an empty order with a zero total.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{order: Order{Items: []*OrderItem{}}}
}

// Developer tags the order with the integrating developer's identifier.
func (b *OrderBuilder) Developer(developer string) *OrderBuilder {
	b.order.Developer = developer
	return b
}

// Source tags the order's submission source.
func (b *OrderBuilder) Source(source string) *OrderBuilder {
	b.order.Source = source
	return b
}

// Platform tags the submitting platform (web, mobileweb, ...).
func (b *OrderBuilder) Platform(platform string) *OrderBuilder {
	b.order.Platform = platform
	return b
}

// Restaurant sets the target restaurant.
func (b *OrderBuilder) Restaurant(restaurantID string) *OrderBuilder {
	b.order.RestaurantID = restaurantID
	return b
}

// Locale sets the customer's locale tag, e.g. "en_US".
func (b *OrderBuilder) Locale(locale string) *OrderBuilder {
	b.order.Locale = locale
	return b
}

// Currency sets the order's ISO 4217 currency code.
func (b *OrderBuilder) Currency(currency string) *OrderBuilder {
	b.order.Currency = currency
	return b
}

// Contact sets the ordering customer's contact details.
func (b *OrderBuilder) Contact(contact customers.Contact) *OrderBuilder {
	b.order.Contact = &contact
	return b
}

// Dispatch sets the fulfillment method and adds its charge to the total.
func (b *OrderBuilder) Dispatch(dispatch Dispatch) *OrderBuilder {
	b.order.Dispatch = &dispatch
	b.order.Price += dispatch.Charge
	return b
}

// AddItem appends a root order item and adds its recursive, quantity-scaled
// price to the total.
func (b *OrderBuilder) AddItem(item *OrderItem) *OrderBuilder {
	b.order.Items = append(b.order.Items, item)
	b.order.Price += Price(item)
	return b
}

// Comment attaches a free-text comment to the order.
func (b *OrderBuilder) Comment(comment string) *OrderBuilder {
	b.order.Comment = comment
	return b
}

// AddPayment appends a payment. Payments never change the order price.
func (b *OrderBuilder) AddPayment(payment Payment) *OrderBuilder {
	b.order.Payments = append(b.order.Payments, payment)
	return b
}

// Build returns the finished order.
func (b *OrderBuilder) Build() *Order {
	order := b.order
	return &order
}
