package domain

import (
	"errors"
	"math"
	"strings"
)

// FuelType identifies a product from the station price table.
type FuelType string

const (
	Pertalite     FuelType = "Pertalite"
	Pertamax      FuelType = "Pertamax"
	PertamaxTurbo FuelType = "Pertamax Turbo"
	Dexlite       FuelType = "Dexlite"
	PertaminaDex  FuelType = "Pertamina Dex"
)

// FuelTypes lists every known product in display order.
var FuelTypes = []FuelType{
	Pertalite,
	Pertamax,
	PertamaxTurbo,
	Dexlite,
	PertaminaDex,
}

func (f FuelType) Valid() bool {
	for _, known := range FuelTypes {
		if f == known {
			return true
		}
	}
	return false
}

// Transaction describes one fuel sale. It is mutated only before
// dispatch; once a receipt is printed the transaction-scoped fields are
// cleared and the rest carries over to the next sale.
type Transaction struct {
	// Date is the civil date in DD/MM/YYYY form, Time is HH:MM.
	Date string `json:"date"`
	Time string `json:"time"`

	// Seconds is assigned once when Time is edited and never recomputed
	// afterwards. It is not derived from the wall clock at print time.
	Seconds int `json:"seconds"`

	FuelType  FuelType `json:"fuel_type"`
	UnitPrice float64  `json:"unit_price"`

	TotalAmount float64 `json:"total_amount"`

	PlateNumber       string `json:"plate_number"`
	OperatorName      string `json:"operator_name"`
	Shift             string `json:"shift"`
	PumpNumber        string `json:"pump_number"`
	TransactionNumber string `json:"transaction_number"`
}

// VolumeLiters derives the sold volume from the total amount and unit
// price, rounded to two decimals. It is never stored: recompute, don't
// persist.
func (t Transaction) VolumeLiters() float64 {
	if t.UnitPrice <= 0 {
		return 0
	}
	return math.Round(t.TotalAmount/t.UnitPrice*100) / 100
}

// ClearTransactionScoped resets the fields that belong to a single
// receipt. Session-scoped fields (date, time, fuel type, prices,
// operator data) are left intact.
func (t *Transaction) ClearTransactionScoped() {
	t.TotalAmount = 0
	t.TransactionNumber = ""
}

// Normalize trims free-text fields in place.
func (t *Transaction) Normalize() {
	t.Date = strings.TrimSpace(t.Date)
	t.Time = strings.TrimSpace(t.Time)
	t.PlateNumber = strings.TrimSpace(t.PlateNumber)
	t.OperatorName = strings.TrimSpace(t.OperatorName)
	t.Shift = strings.TrimSpace(t.Shift)
	t.PumpNumber = strings.TrimSpace(t.PumpNumber)
	t.TransactionNumber = strings.TrimSpace(t.TransactionNumber)
}

var (
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidFuelType = errors.New("invalid_fuel_type")
)

// Validate rejects a transaction before any composition is attempted.
func (t Transaction) Validate() error {
	if t.TotalAmount <= 0 {
		return ErrInvalidAmount
	}
	if t.FuelType != "" && !t.FuelType.Valid() {
		return ErrInvalidFuelType
	}
	return nil
}
