// Package compose assembles the full ESC/POS command stream for one
// fuel receipt.
package compose

import (
	"strings"

	"github.com/smallbiznis/pompabon/internal/escpos"
	"github.com/smallbiznis/pompabon/internal/receipt/domain"
	"github.com/smallbiznis/pompabon/internal/receipt/format"
)

// StationProfile carries the site literals printed on every receipt.
type StationProfile struct {
	// SiteCode is printed double-width under the logo, e.g. "SPBU 34.17101".
	SiteCode string
	// Name and Address are the two normal-width lines below the code.
	Name    string
	Address string
	// FallbackHeader replaces the logo bitmap when rasterization fails.
	FallbackHeader string
}

// Composer turns a transaction into a printer command stream. It is
// pure: identical input (including the resolved logo bytes) yields a
// byte-identical stream on every call.
type Composer struct {
	profile StationProfile
}

func New(profile StationProfile) *Composer {
	return &Composer{profile: profile}
}

// Compose builds the command stream in the fixed receipt order. logo is
// the resolved bitmap command, or nil when the text fallback applies.
func (c *Composer) Compose(tx domain.Transaction, logo []byte) []byte {
	buf := escpos.NewBuffer()

	buf.Init()
	buf.SelectStandardFont()
	buf.CondensedPitch()
	buf.NormalLineSpacing()

	// physical top margin
	buf.Feed(3)

	buf.AlignCenter()
	if len(logo) > 0 {
		buf.Raw(logo)
		buf.Feed(1)
	} else {
		buf.Line(c.profile.FallbackHeader)
	}

	buf.DoubleWidth(true)
	buf.Line(c.profile.SiteCode)
	buf.DoubleWidth(false)
	buf.Line(c.profile.Name)
	buf.Line(c.profile.Address)

	buf.AlignLeft()
	for _, line := range c.bodyLines(tx) {
		buf.Line(line)
	}

	buf.Feed(2)
	buf.Cut()

	return buf.Bytes()
}

// Text renders the receipt body as plain rows for on-screen preview,
// with the fallback header standing in for the logo.
func (c *Composer) Text(tx domain.Transaction) string {
	lines := []string{
		c.profile.FallbackHeader,
		c.profile.SiteCode,
		c.profile.Name,
		c.profile.Address,
	}
	lines = append(lines, c.bodyLines(tx)...)
	return strings.Join(lines, "\n")
}

func (c *Composer) bodyLines(tx domain.Transaction) []string {
	left := strings.TrimSpace(tx.Shift + " " + tx.PlateNumber)

	lines := []string{
		format.JustifiedLine(left, tx.TransactionNumber),
		"Waktu: " + format.Waktu(tx.Date, tx.Time, tx.Seconds),
		format.Separator(),
	}

	if tx.PumpNumber != "" {
		lines = append(lines, format.DetailLine("Pulau/Pompa", tx.PumpNumber))
	}
	lines = append(lines,
		format.DetailLine("Produk", strings.ToUpper(string(tx.FuelType))),
		format.DetailLine("Harga/Liter", format.Bon(tx.UnitPrice)),
		format.DetailLine("Volume (L)", format.Volume(tx.VolumeLiters())),
		format.DetailLine("Total", format.Bon(tx.TotalAmount)),
	)
	if tx.OperatorName != "" {
		lines = append(lines, format.DetailLine("Operator", strings.ToUpper(tx.OperatorName)))
	}

	lines = append(lines,
		format.Separator(),
		format.PaymentLine(tx.TotalAmount),
		format.Separator(),
	)

	return lines
}
