package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Display scales. KWD carries three decimal places; foreign currency amounts
// default to two unless the currency record says otherwise.
const (
	KWDScale     int32 = 3
	ForeignScale int32 = 2
)

// Parse converts loosely typed input into an exact decimal. Nil, empty and
// unparseable input map to exact zero. This never returns an error and never
// produces a NaN; the safe-zero policy is deliberate and callers rely on it.
func Parse(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case string:
		return ParseString(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return ParseString(*x)
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

// ParseString parses a decimal string, mapping empty or malformed input to
// exact zero.
func ParseString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SafeDiv divides a by b, returning exact zero when b is zero. Division by
// zero is resolved locally rather than raised, matching the engine-wide
// safe-arithmetic policy.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// RoundTo rounds d to the given scale using round-half-up (halves round
// toward positive infinity): floor(d * 10^scale + 0.5) / 10^scale.
func RoundTo(d decimal.Decimal, scale int32) decimal.Decimal {
	half := decimal.New(5, -1)
	return d.Shift(scale).Add(half).Floor().Shift(-scale)
}

// Format renders d at a fixed number of decimal places for display. This is a
// boundary operation only; the value d itself keeps its full precision for
// any subsequent arithmetic.
func Format(d decimal.Decimal, scale int32) string {
	return RoundTo(d, scale).StringFixed(scale)
}

// LineTotal computes quantity x unitPrice rounded at the given scale. Order
// totals must be built by summing these rounded line totals so that the total
// always equals the sum of the individually displayed lines.
func LineTotal(quantity, unitPrice decimal.Decimal, scale int32) decimal.Decimal {
	return RoundTo(quantity.Mul(unitPrice), scale)
}
