package domain

import "fmt"

// Cents is a fixed-point currency amount with two decimal places,
// stored as an integer number of cents.
type Cents int64

// CentsFromFloat converts a float amount to Cents using round-half-up.
func CentsFromFloat(amount float64) Cents {
	if amount >= 0 {
		return Cents(amount*100 + 0.5)
	}
	return Cents(amount*100 - 0.5)
}

// Float64 returns the amount as a float with two decimal places.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// String formats the amount as a plain decimal, e.g. "1250.00".
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
