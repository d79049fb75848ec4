package value

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Decode converts a wire value to its native form:
// int64, float64, bool, string or time.Time. nil means absent.
func (c Codec) Decode(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindInteger:
		if n, ok := IntegerOf(v); ok {
			return n
		}
	case KindDecimal:
		if f, ok := FloatOf(v); ok {
			return f
		}
	case KindBoolean:
		return BooleanOf(v)
	case KindString:
		if s, ok := StringOf(v, c.UppercaseStrings); ok {
			return s
		}
	case KindDate:
		if t, ok := DateOf(v); ok {
			return t
		}
	case KindUnknown:
	}
	return nil
}

// IntegerOf returns the integer payload.
func IntegerOf(v *Value) (int64, bool) {
	if v == nil || v.Int == nil {
		return 0, false
	}
	return *v.Int, true
}

// DecimalOf returns the decimal payload as an exact decimal.
// Unparsable digits count as absent.
func DecimalOf(v *Value) (decimal.Decimal, bool) {
	if v == nil || v.Decimal == nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.Decimal.Digits))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FloatOf returns the decimal payload as a float64. The scale is not used.
func FloatOf(v *Value) (float64, bool) {
	d, ok := DecimalOf(v)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// BooleanOf returns the boolean payload, false when unset.
func BooleanOf(v *Value) bool {
	if v == nil || v.Bool == nil {
		return false
	}
	return *v.Bool
}

// StringOf returns the string payload. Like every other kind, only a missing
// payload is absent; "-1" and blank strings are returned as sent.
func StringOf(v *Value, uppercase bool) (string, bool) {
	if v == nil || v.Str == nil {
		return "", false
	}
	s := *v.Str
	if uppercase {
		s = strings.ToUpper(s)
	}
	return s, true
}

// DateOf returns the date payload. Zero and pre-epoch instants are absent.
func DateOf(v *Value) (time.Time, bool) {
	if v == nil || v.Millis == nil || *v.Millis <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(*v.Millis).UTC(), true
}
