package orders

import "tableside/money"

// Payment types.
const (
	PaymentTypeCash           = "cash"
	PaymentTypeCardToken      = "creditcard_token"
	PaymentTypeExternalPortal = "external_portal"
)

// Payment is one payment attached to an order. Payments record how the
// customer intends to pay; they never affect the order's computed price, and
// the server validates sufficiency.
type Payment struct {
	Type   string       `json:"type"`
	Amount money.Amount `json:"amount"`
	// Token carries the tokenized card for card payments.
	Token string `json:"token,omitempty"`
	// ExternalIDs maps a payment-portal tag to the portal's own identifier
	// for this payment.
	ExternalIDs map[string]string `json:"externalIds,omitempty"`
}

// CashPaymentBuilder assembles a cash payment.
type CashPaymentBuilder struct {
	payment Payment
}

// NewCashPaymentBuilder starts a cash payment.
func NewCashPaymentBuilder() *CashPaymentBuilder {
	return &CashPaymentBuilder{payment: Payment{Type: PaymentTypeCash}}
}

// Amount sets the amount in minor units.
func (b *CashPaymentBuilder) Amount(amount money.Amount) *CashPaymentBuilder {
	b.payment.Amount = amount
	return b
}

// Build returns the finished payment.
func (b *CashPaymentBuilder) Build() Payment {
	return b.payment
}

// CardTokenPaymentBuilder assembles a tokenized card payment.
type CardTokenPaymentBuilder struct {
	payment Payment
}

// NewCardTokenPaymentBuilder starts a card-token payment.
func NewCardTokenPaymentBuilder() *CardTokenPaymentBuilder {
	return &CardTokenPaymentBuilder{payment: Payment{Type: PaymentTypeCardToken}}
}

// Amount sets the amount in minor units.
func (b *CardTokenPaymentBuilder) Amount(amount money.Amount) *CardTokenPaymentBuilder {
	b.payment.Amount = amount
	return b
}

// Token sets the card token obtained from the payment gateway.
func (b *CardTokenPaymentBuilder) Token(token string) *CardTokenPaymentBuilder {
	b.payment.Token = token
	return b
}

// Build returns the finished payment.
func (b *CardTokenPaymentBuilder) Build() Payment {
	return b.payment
}

// ExternalPortalPaymentBuilder assembles a payment credited through an
// external ordering portal.
type ExternalPortalPaymentBuilder struct {
	payment Payment
}

// NewExternalPortalPaymentBuilder starts an external-portal payment.
func NewExternalPortalPaymentBuilder() *ExternalPortalPaymentBuilder {
	return &ExternalPortalPaymentBuilder{payment: Payment{Type: PaymentTypeExternalPortal}}
}

// Amount sets the amount in minor units.
func (b *ExternalPortalPaymentBuilder) Amount(amount money.Amount) *ExternalPortalPaymentBuilder {
	b.payment.Amount = amount
	return b
}

// ExternalID records the portal's identifier for this payment under the
// given portal tag.
func (b *ExternalPortalPaymentBuilder) ExternalID(portal, id string) *ExternalPortalPaymentBuilder {
	if b.payment.ExternalIDs == nil {
		b.payment.ExternalIDs = make(map[string]string)
	}
	b.payment.ExternalIDs[portal] = id
	return b
}

// Build returns the finished payment.
func (b *ExternalPortalPaymentBuilder) Build() Payment {
	return b.payment
}
