package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeLiters(t *testing.T) {
	tx := Transaction{UnitPrice: 12200, TotalAmount: 122000}
	assert.Equal(t, 10.0, tx.VolumeLiters())

	// rounds half up at the second decimal
	tx = Transaction{UnitPrice: 10000, TotalAmount: 98450}
	assert.Equal(t, 9.85, tx.VolumeLiters())

	// no price means no derivable volume
	tx = Transaction{UnitPrice: 0, TotalAmount: 50000}
	assert.Equal(t, 0.0, tx.VolumeLiters())
}

func TestClearTransactionScoped(t *testing.T) {
	tx := Transaction{
		Date:              "21/08/2026",
		FuelType:          Pertamax,
		UnitPrice:         12200,
		TotalAmount:       122000,
		TransactionNumber: "4011234",
		OperatorName:      "Siti",
	}

	tx.ClearTransactionScoped()

	assert.Zero(t, tx.TotalAmount)
	assert.Empty(t, tx.TransactionNumber)
	assert.Equal(t, "21/08/2026", tx.Date)
	assert.Equal(t, Pertamax, tx.FuelType)
	assert.Equal(t, float64(12200), tx.UnitPrice)
	assert.Equal(t, "Siti", tx.OperatorName)
}

func TestValidate(t *testing.T) {
	valid := Transaction{FuelType: Pertalite, TotalAmount: 50000}
	assert.NoError(t, valid.Validate())

	// fuel type may be left blank on quick sales
	blankFuel := Transaction{TotalAmount: 50000}
	assert.NoError(t, blankFuel.Validate())

	zero := Transaction{FuelType: Pertalite}
	assert.ErrorIs(t, zero.Validate(), ErrInvalidAmount)

	negative := Transaction{FuelType: Pertalite, TotalAmount: -1}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidAmount)

	unknown := Transaction{FuelType: "Solar Subsidi Palsu", TotalAmount: 50000}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidFuelType)
}

func TestNormalize(t *testing.T) {
	tx := Transaction{
		Date:        " 21/08/2026 ",
		Time:        "14:05 ",
		PlateNumber: "  B 1234 CD",
		Shift:       " 1 ",
	}
	tx.Normalize()

	assert.Equal(t, "21/08/2026", tx.Date)
	assert.Equal(t, "14:05", tx.Time)
	assert.Equal(t, "B 1234 CD", tx.PlateNumber)
	assert.Equal(t, "1", tx.Shift)
}
