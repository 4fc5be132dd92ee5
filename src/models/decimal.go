package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Decimal is an amount stored as numeric(10,2). It is written to JSON as a
// string with two decimals, e.g. "30093.00", and read from a string or number.
type Decimal float64

func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %s: %w", data, err)
	}
	*d = Decimal(v)
	return nil
}
