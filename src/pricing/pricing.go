// Package pricing computes booking totals for both quote forms.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	InsuranceFee = 99
	TaxRate      = 0.10
)

type Options struct {
	Insurance bool
	Tax       bool
}

type Breakdown struct {
	BasePrice  float64
	GuestCount int
	Subtotal   float64
	Insurance  float64
	Taxes      float64
	Total      float64
}

// Tax is levied once per booking on the per-guest base price, rounded down.
func Tax(base float64) float64 {
	return math.Floor(base * TaxRate)
}

func Quote(base float64, guests int, opts Options) Breakdown {
	b := Breakdown{
		BasePrice:  base,
		GuestCount: guests,
		Subtotal:   base * float64(guests),
	}
	if opts.Insurance {
		b.Insurance = InsuranceFee
	}
	if opts.Tax {
		b.Taxes = Tax(base)
	}
	b.Total = b.Subtotal + b.Insurance + b.Taxes
	return b
}

func Total(base float64, guests int, opts Options) float64 {
	return Quote(base, guests, opts).Total
}

// ParseBase reads a decimal price as stored on packages, e.g. "2799.00".
func ParseBase(value string) (float64, error) {
	base, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", value, err)
	}
	if base < 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return 0, fmt.Errorf("invalid price %q", value)
	}
	return base, nil
}
