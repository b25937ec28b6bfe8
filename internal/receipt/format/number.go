package format

import (
	"fmt"
	"math/rand"
)

// transaction numbers carry the fixed 401 station prefix followed by a
// four-digit random suffix (1000-9999).
const numberPrefix = "401"

// NumberGenerator produces human-readable transaction numbers. There is
// no uniqueness guarantee beyond the random suffix; duplicates across
// receipts are possible and accepted.
type NumberGenerator interface {
	Generate() string
}

type randomNumberGenerator struct {
	intn func(n int) int
}

// NewNumberGenerator returns the production generator backed by
// math/rand.
func NewNumberGenerator() NumberGenerator {
	return &randomNumberGenerator{intn: rand.Intn}
}

// NewNumberGeneratorWithSource lets tests pin the suffix source.
func NewNumberGeneratorWithSource(intn func(n int) int) NumberGenerator {
	return &randomNumberGenerator{intn: intn}
}

func (g *randomNumberGenerator) Generate() string {
	suffix := 1000 + g.intn(9000)
	return fmt.Sprintf("%s%d", numberPrefix, suffix)
}
