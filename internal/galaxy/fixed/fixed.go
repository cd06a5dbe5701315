// Package fixed provides the deterministic numeric type used for all
// physically meaningful quantities in custom system definitions.
//
// Galaxy generation must be reproducible across platforms, so stored state
// never holds a float64. Values are decimal under the hood; floats are only
// accepted at the ingestion boundary and converted immediately.
package fixed

import "github.com/shopspring/decimal"

// Value is a fixed-precision decimal quantity.
type Value = decimal.Decimal

// Zero is the zero quantity.
var Zero = decimal.Zero

// One is the unit quantity.
var One = decimal.NewFromInt(1)

// FromFloat converts a float supplied by an ingestion path.
func FromFloat(f float64) Value {
	return decimal.NewFromFloat(f)
}

// FromInt converts an integer quantity.
func FromInt(n int64) Value {
	return decimal.NewFromInt(n)
}

// FromRat builds num/denom, the constructor exposed to system scripts.
// A zero denominator yields zero.
func FromRat(num, denom int64) Value {
	if denom == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(denom))
}

// IsNegative reports whether v is strictly below zero.
func IsNegative(v Value) bool {
	return v.Sign() < 0
}

// IsPositive reports whether v is strictly above zero.
func IsPositive(v Value) bool {
	return v.Sign() > 0
}
