package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPriceFor(t *testing.T) {
	table := DefaultPriceTable()

	price, ok := table.UnitPriceFor("Pertamax")
	assert.True(t, ok)
	assert.Equal(t, float64(12200), price)

	// lookup is case-insensitive
	price, ok = table.UnitPriceFor("pertamax turbo")
	assert.True(t, ok)
	assert.Equal(t, float64(13450), price)

	_, ok = table.UnitPriceFor("Avtur")
	assert.False(t, ok)
}

func TestValidatePriceTable(t *testing.T) {
	assert.NoError(t, validatePriceTable(DefaultPriceTable()))

	assert.Error(t, validatePriceTable(PriceTable{}))
	assert.Error(t, validatePriceTable(PriceTable{Prices: []FuelPrice{{Product: "  ", UnitPrice: 100}}}))
	assert.Error(t, validatePriceTable(PriceTable{Prices: []FuelPrice{{Product: "Pertalite", UnitPrice: 0}}}))
}

func TestStaticHolder(t *testing.T) {
	holder := NewStaticPriceTableHolder(PriceTable{
		Prices: []FuelPrice{{Product: "Pertalite", UnitPrice: 11000}},
	})

	price, ok := holder.Get().UnitPriceFor("Pertalite")
	assert.True(t, ok)
	assert.Equal(t, float64(11000), price)
}
