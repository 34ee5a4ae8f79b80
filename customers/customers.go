// Package customers holds the customer-facing DTOs shared by orders,
// reservations, and search: contact details and postal addresses.
package customers

// Contact identifies the person placing an order or reservation.
type Contact struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a delivery or venue address.
type Address struct {
	Formatted  string  `json:"formatted,omitempty"`
	Street     string  `json:"street,omitempty"`
	Number     string  `json:"number,omitempty"`
	City       string  `json:"city,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
	Comment    string  `json:"comment,omitempty"`
	LatLng     *LatLng `json:"latLng,omitempty"`
}

// ContactBuilder assembles a Contact.
type ContactBuilder struct {
	contact Contact
}

// NewContactBuilder starts an empty contact.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{}
}

// FirstName sets the contact's first name.
func (b *ContactBuilder) FirstName(firstName string) *ContactBuilder {
	b.contact.FirstName = firstName
	return b
}

// LastName sets the contact's last name.
func (b *ContactBuilder) LastName(lastName string) *ContactBuilder {
	b.contact.LastName = lastName
	return b
}

// Phone sets the contact's phone number in E.164 format.
func (b *ContactBuilder) Phone(phone string) *ContactBuilder {
	b.contact.Phone = phone
	return b
}

// Email sets the contact's email address.
func (b *ContactBuilder) Email(email string) *ContactBuilder {
	b.contact.Email = email
	return b
}

// Build returns the finished contact.
func (b *ContactBuilder) Build() Contact {
	return b.contact
}
