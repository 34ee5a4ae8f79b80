// Package reservations models table reservations and their client-side
// construction. Like orders, a reservation is built fresh per submission and
// the server owns its lifecycle afterwards.
package reservations

import (
	"time"

	"tableside/customers"
)

// Reservation statuses assigned by the platform.
const (
	StatusNew      = "new"
	StatusAccepted = "accepted"
	StatusCanceled = "canceled"
)

// Time guarantee for the requested reservation time.
const TimeGuaranteeApproximate = "approximate"

// Reservation is a table reservation request or record. Time and HeldUntil
// are epoch milliseconds.
type Reservation struct {
	// Server-assigned fields, empty until submitted.
	ID         string `json:"id,omitempty"`
	Status     string `json:"status,omitempty"`
	OwnerToken string `json:"ownerToken,omitempty"`

	Developer     string             `json:"developer,omitempty"`
	Platform      string             `json:"platform,omitempty"`
	Source        string             `json:"source,omitempty"`
	RestaurantID  string             `json:"restaurantId,omitempty"`
	Locale        string             `json:"locale,omitempty"`
	Contact       *customers.Contact `json:"contact,omitempty"`
	PartySize     int                `json:"partySize,omitempty"`
	TimeGuarantee string             `json:"timeGuarantee,omitempty"`
	Time          int64              `json:"time,omitempty"`
	HeldUntil     int64              `json:"heldUntil,omitempty"`
	Comment       string             `json:"comment,omitempty"`
	Properties    map[string]string  `json:"properties,omitempty"`
}

// Builder assembles a Reservation.
type Builder struct {
	reservation Reservation
}

// NewBuilder starts an empty reservation.
func NewBuilder() *Builder {
	return &Builder{reservation: Reservation{Properties: map[string]string{}}}
}

// Developer tags the reservation with the integrating developer's
// identifier.
func (b *Builder) Developer(developer string) *Builder {
	b.reservation.Developer = developer
	return b
}

// Platform tags the submitting platform.
func (b *Builder) Platform(platform string) *Builder {
	b.reservation.Platform = platform
	return b
}

// Source tags the reservation's submission source.
func (b *Builder) Source(source string) *Builder {
	b.reservation.Source = source
	return b
}

// Restaurant sets the target restaurant.
func (b *Builder) Restaurant(restaurantID string) *Builder {
	b.reservation.RestaurantID = restaurantID
	return b
}

// Locale sets the customer's locale tag.
func (b *Builder) Locale(locale string) *Builder {
	b.reservation.Locale = locale
	return b
}

// Contact sets the reserving customer's contact details.
func (b *Builder) Contact(contact customers.Contact) *Builder {
	b.reservation.Contact = &contact
	return b
}

// PartySize sets the number of guests.
func (b *Builder) PartySize(partySize int) *Builder {
	b.reservation.PartySize = partySize
	return b
}

// Time sets the requested time. Reservation times are always approximate.
func (b *Builder) Time(when time.Time) *Builder {
	b.reservation.TimeGuarantee = TimeGuaranteeApproximate
	b.reservation.Time = when.UnixMilli()
	return b
}

// HeldUntil sets how long the table is held past the requested time.
func (b *Builder) HeldUntil(until time.Time) *Builder {
	b.reservation.HeldUntil = until.UnixMilli()
	return b
}

// Comment attaches a free-text comment.
func (b *Builder) Comment(comment string) *Builder {
	b.reservation.Comment = comment
	return b
}

// Build returns the finished reservation.
func (b *Builder) Build() *Reservation {
	reservation := b.reservation
	return &reservation
}
