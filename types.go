// Package tableside is a client SDK for the Tableside restaurant-ordering
// platform. It assembles and prices orders locally (see the orders package),
// submits them over HTTP, and translates failure envelopes into typed
// errors. The server is the source of truth and may recompute or reject
// anything the client sends.
package tableside

import (
	"tableside/customers"
	"tableside/menu"
)

// View modes: who a request acts as. Restaurant staff authenticate with an
// access token; an order's anonymous owner authenticates with the owner
// token the server issued at submission.
const (
	ViewModeRestaurant = "restaurant"
	ViewModeCustomer   = "customer"
)

// Orderings for order queries.
const (
	OrderingAsc  = "asc"
	OrderingDesc = "desc"
)

// Restaurant is the platform's record of a venue.
type Restaurant struct {
	ID       string               `json:"id"`
	Title    menu.LocalizedString `json:"title,omitempty"`
	Locale   string               `json:"locale,omitempty"`
	Currency string               `json:"currency,omitempty"`
	Timezone string               `json:"timezone,omitempty"`
	Contact  *customers.Contact   `json:"contact,omitempty"`
	Address  *customers.Address   `json:"address,omitempty"`
}

// RestaurantFullInfo bundles a restaurant with its current menu snapshot.
type RestaurantFullInfo struct {
	Restaurant Restaurant `json:"restaurant"`
	Menu       menu.Menu  `json:"menu"`
}

// SearchResult is one venue matched by a search.
type SearchResult struct {
	ID       string               `json:"id"`
	Title    menu.LocalizedString `json:"title,omitempty"`
	Locale   string               `json:"locale,omitempty"`
	Currency string               `json:"currency,omitempty"`
	Timezone string               `json:"timezone,omitempty"`
	Contact  *customers.Contact   `json:"contact,omitempty"`
	Address  *customers.Address   `json:"address,omitempty"`
}

// Filter narrows a search to venues serving a location.
type Filter struct {
	LatLng *customers.LatLng `json:"latLng,omitempty"`
	Radius float64           `json:"radius,omitempty"`
}

// FilterBuilder assembles a search filter.
type FilterBuilder struct {
	filter Filter
}

// NewFilterBuilder starts an empty filter.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// LatLng sets the search origin.
func (b *FilterBuilder) LatLng(lat, lng float64) *FilterBuilder {
	b.filter.LatLng = &customers.LatLng{Lat: lat, Lng: lng}
	return b
}

// Radius sets the search radius in meters.
func (b *FilterBuilder) Radius(radius float64) *FilterBuilder {
	b.filter.Radius = radius
	return b
}

// Build returns the finished filter.
func (b *FilterBuilder) Build() Filter {
	return b.filter
}
