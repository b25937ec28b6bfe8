// Package format renders fixed-width receipt lines for 32-column
// thermal paper. Everything here is pure and deterministic: no clock, no
// randomness, no I/O.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/smallbiznis/pompabon/internal/escpos"
)

// LabelWidth is the column the separator colon sits in on detail lines,
// so values align vertically across the block.
const LabelWidth = 12

const paymentLabel = "CASH"

// DetailLine renders `Label       : value`. Labels longer than
// LabelWidth are truncated so the colon column never drifts.
func DetailLine(label, value string) string {
	if len(label) > LabelWidth {
		label = label[:LabelWidth]
	}
	return fmt.Sprintf("%-*s: %s", LabelWidth, label, value)
}

// JustifiedLine joins a left and right fragment with enough spacing to
// fill the 32-column line. When the fragments do not fit, spacing floors
// at one space and the line overflows; nothing is truncated.
func JustifiedLine(left, right string) string {
	spacing := escpos.Columns - len(left) - len(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

// PaymentLine anchors the CASH label at column one and the grouped
// amount at column 32.
func PaymentLine(amount float64) string {
	value := GroupThousands(amount)
	spaces := escpos.Columns - len(paymentLabel) - len(value)
	if spaces < 0 {
		spaces = 0
	}
	return paymentLabel + strings.Repeat(" ", spaces) + value
}

// Separator is a full-width dashed rule.
func Separator() string {
	return strings.Repeat("-", escpos.Columns)
}

// Bon renders an amount in receipt currency style: integer-rounded,
// dot-grouped thousands, prefixed with "RP. ". This is the printed
// format; on-screen previews use Rupiah instead.
func Bon(amount float64) string {
	return "RP. " + GroupThousands(amount)
}

// Rupiah renders the on-screen preview currency format ("Rp122.000").
// Not for thermal output.
func Rupiah(amount float64) string {
	return "Rp" + GroupThousands(amount)
}

// GroupThousands rounds to a whole amount and groups digits with dots
// (id-ID convention).
func GroupThousands(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}

// Volume renders liters with two decimals.
func Volume(liters float64) string {
	return fmt.Sprintf("%.2f", liters)
}

// Waktu renders the receipt timestamp line body, DD/MM/YYYY HH:MM:SS,
// using the seconds stored on the transaction rather than the clock.
func Waktu(date, clock string, seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > 59 {
		seconds = 59
	}
	return fmt.Sprintf("%s %s:%02d", date, clock, seconds)
}
