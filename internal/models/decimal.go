package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts render as JSON numbers, e.g. 4.5 rather than "4.5".
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxAmount is the largest value an amount column (NUMERIC(14,2)) holds.
var MaxAmount = decimal.New(99999999999999, -2)

// Exponent window accepted before rounding. Anything outside it is either
// beyond MaxAmount or carries more precision than is worth rescaling.
const (
	minAmountExponent = -32
	maxAmountExponent = 12
)

// NormalizeAmount rounds d to cents and reports whether the result fits an
// amount column. The exponent is checked first so that inputs like 1e2000000
// are rejected without being expanded.
func NormalizeAmount(d decimal.Decimal) (decimal.Decimal, bool) {
	if exp := d.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Zero, false
	}
	d = d.Round(2)
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, false
	}
	return d, true
}

// Amount is a request amount. It decodes from a JSON number or a numeric
// string and reports malformed input as *AmountSyntaxError.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if err := a.Decimal.UnmarshalJSON(b); err != nil {
		return &AmountSyntaxError{Input: string(b), Err: err}
	}
	return nil
}

// AmountSyntaxError reports a JSON amount that is not a decimal number.
type AmountSyntaxError struct {
	Input string
	Err   error
}

func (e *AmountSyntaxError) Error() string { return "invalid amount " + e.Input + ": " + e.Err.Error() }

func (e *AmountSyntaxError) Unwrap() error { return e.Err }
