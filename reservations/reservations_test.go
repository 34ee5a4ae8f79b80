package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/customers"
)

func TestBuilder(t *testing.T) {
	when := time.Date(2026, time.September, 4, 20, 0, 0, 0, time.UTC)
	held := when.Add(30 * time.Minute)

	reservation := NewBuilder().
		Developer("org.example").
		Restaurant("rest-1").
		Locale("en_US").
		Contact(customers.NewContactBuilder().
			FirstName("Jane").
			Phone("+12024561111").
			Build()).
		PartySize(4).
		Time(when).
		HeldUntil(held).
		Comment("window table if possible").
		Build()

	assert.Equal(t, "rest-1", reservation.RestaurantID)
	assert.Equal(t, 4, reservation.PartySize)
	assert.Equal(t, TimeGuaranteeApproximate, reservation.TimeGuarantee)
	assert.Equal(t, when.UnixMilli(), reservation.Time)
	assert.Equal(t, held.UnixMilli(), reservation.HeldUntil)
	require.NotNil(t, reservation.Contact)
	assert.Equal(t, "Jane", reservation.Contact.FirstName)

	// Server-assigned fields start empty.
	assert.Empty(t, reservation.ID)
	assert.Empty(t, reservation.Status)
	assert.Empty(t, reservation.OwnerToken)
}

func TestBuildReturnsIndependentCopies(t *testing.T) {
	builder := NewBuilder().Restaurant("rest-1")

	first := builder.Build()
	second := builder.PartySize(2).Build()

	assert.Zero(t, first.PartySize)
	assert.Equal(t, 2, second.PartySize)
}
