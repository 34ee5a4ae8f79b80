package orders

import (
	"time"

	"tableside/customers"
	"tableside/money"
)

// Dispatch types.
const (
	DispatchTypePickup   = "pickup"
	DispatchTypeDelivery = "delivery"
	DispatchTypeTakeout  = "takeout"
)

// Time guarantees. ASAP orders promise fulfillment before an implied time;
// scheduled orders target an approximate time.
const (
	TimeGuaranteeBefore      = "before"
	TimeGuaranteeApproximate = "approximate"
)

// Dispatch describes how an order is fulfilled: pickup, delivery, or
// takeout, with the associated charge and scheduling. Time is epoch
// milliseconds, zero for ASAP. Address is set for delivery only.
type Dispatch struct {
	Type          string             `json:"type"`
	Charge        money.Amount       `json:"charge"`
	TimeGuarantee string             `json:"timeGuarantee,omitempty"`
	Time          int64              `json:"time,omitempty"`
	Address       *customers.Address `json:"address,omitempty"`
}

// PickupBuilder assembles a pickup dispatch.
type PickupBuilder struct {
	dispatch Dispatch
}

// NewPickupBuilder starts a pickup dispatch, ASAP by default.
func NewPickupBuilder() *PickupBuilder {
	return &PickupBuilder{dispatch: Dispatch{
		Type:          DispatchTypePickup,
		TimeGuarantee: TimeGuaranteeBefore,
	}}
}

// ForASAP requests fulfillment as soon as possible.
func (b *PickupBuilder) ForASAP() *PickupBuilder {
	b.dispatch.TimeGuarantee = TimeGuaranteeBefore
	b.dispatch.Time = 0
	return b
}

// ForFutureTime schedules fulfillment around the given time.
func (b *PickupBuilder) ForFutureTime(when time.Time) *PickupBuilder {
	b.dispatch.TimeGuarantee = TimeGuaranteeApproximate
	b.dispatch.Time = when.UnixMilli()
	return b
}

// Charge sets the pickup charge in minor units.
func (b *PickupBuilder) Charge(charge money.Amount) *PickupBuilder {
	b.dispatch.Charge = charge
	return b
}

// Build returns the finished dispatch.
func (b *PickupBuilder) Build() Dispatch {
	return b.dispatch
}

// DeliveryBuilder assembles a delivery dispatch.
type DeliveryBuilder struct {
	dispatch Dispatch
}

// NewDeliveryBuilder starts a delivery dispatch, ASAP by default.
func NewDeliveryBuilder() *DeliveryBuilder {
	return &DeliveryBuilder{dispatch: Dispatch{
		Type:          DispatchTypeDelivery,
		TimeGuarantee: TimeGuaranteeBefore,
	}}
}

// ForASAP requests delivery as soon as possible.
func (b *DeliveryBuilder) ForASAP() *DeliveryBuilder {
	b.dispatch.TimeGuarantee = TimeGuaranteeBefore
	b.dispatch.Time = 0
	return b
}

// ForFutureTime schedules delivery around the given time.
func (b *DeliveryBuilder) ForFutureTime(when time.Time) *DeliveryBuilder {
	b.dispatch.TimeGuarantee = TimeGuaranteeApproximate
	b.dispatch.Time = when.UnixMilli()
	return b
}

// ToAddress sets the delivery address.
func (b *DeliveryBuilder) ToAddress(address customers.Address) *DeliveryBuilder {
	b.dispatch.Address = &address
	return b
}

// Charge sets the delivery charge in minor units.
func (b *DeliveryBuilder) Charge(charge money.Amount) *DeliveryBuilder {
	b.dispatch.Charge = charge
	return b
}

// Build returns the finished dispatch.
func (b *DeliveryBuilder) Build() Dispatch {
	return b.dispatch
}

// TakeoutBuilder assembles a takeout dispatch.
type TakeoutBuilder struct {
	dispatch Dispatch
}

// NewTakeoutBuilder starts a takeout dispatch.
func NewTakeoutBuilder() *TakeoutBuilder {
	return &TakeoutBuilder{dispatch: Dispatch{Type: DispatchTypeTakeout}}
}

// Build returns the finished dispatch.
func (b *TakeoutBuilder) Build() Dispatch {
	return b.dispatch
}
