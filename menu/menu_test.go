package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/money"
)

func sampleItems() []Item {
	return []Item{
		{
			ID:    "carpaccio",
			Title: LocalizedString{"en_US": "Beef Carpaccio", "he_IL": "קרפצ'יו"},
			Price: 5900,
		},
		{
			ID:    "coke",
			Title: LocalizedString{"en_US": "Coca-Cola"},
			Price: 0,
			Variations: []Variation{
				{
					ID:      "coke-size",
					Title:   LocalizedString{"en_US": "Size"},
					ItemIDs: []string{"coke-small", "coke-large"},
					Prices:  map[string]money.Amount{"coke-large": 300},
				},
			},
		},
		{ID: "coke-small", Title: LocalizedString{"en_US": "Small Coke"}, Price: 800},
		{ID: "coke-large", Title: LocalizedString{"en_US": "Large Coke"}, Price: 1100},
	}
}

func TestIndexLookup(t *testing.T) {
	ix := NewIndex(sampleItems())

	item, ok := ix.Lookup("carpaccio")
	require.True(t, ok)
	assert.Equal(t, money.Amount(5900), item.Price)

	_, ok = ix.Lookup("no-such-item")
	assert.False(t, ok)
}

func TestIndexLaterDuplicateWins(t *testing.T) {
	ix := NewIndex([]Item{
		{ID: "dup", Price: 100},
		{ID: "dup", Price: 200},
	})

	item, ok := ix.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, money.Amount(200), item.Price)
}

func TestIndexSearch(t *testing.T) {
	ix := NewIndex(sampleItems())

	results := ix.Search("coke")
	require.Len(t, results, 3)
	assert.Equal(t, "coke", results[0].ID)

	assert.Empty(t, ix.Search("pizza"))

	first := ix.FindFirst("CARPACCIO")
	require.NotNil(t, first)
	assert.Equal(t, "carpaccio", first.ID)

	assert.Nil(t, ix.FindFirst("pizza"))
}

func TestVariationPriceOf(t *testing.T) {
	v := Variation{
		ItemIDs: []string{"coke-small", "coke-large"},
		Prices:  map[string]money.Amount{"coke-large": 300},
	}

	assert.Equal(t, money.Amount(300), v.PriceOf("coke-large"))
	// No override means the choice is free, regardless of its base price.
	assert.Equal(t, money.Zero, v.PriceOf("coke-small"))
}

func TestLocalizer(t *testing.T) {
	l := NewLocalizer("en_US", "he_IL")

	assert.Equal(t, "קרפצ'יו", l.Localize(LocalizedString{"en_US": "Beef Carpaccio", "he_IL": "קרפצ'יו"}))
	assert.Equal(t, "Coca-Cola", l.Localize(LocalizedString{"en_US": "Coca-Cola"}))
	assert.Equal(t, "", l.Localize(LocalizedString{"fr_FR": "Coca"}))
	assert.Equal(t, "", l.Localize(nil))
}
