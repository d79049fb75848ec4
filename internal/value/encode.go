package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Encode converts x into a wire value, picking the kind from x's Go type.
func (c Codec) Encode(x any) *Value {
	x = indirect(x)
	switch t := x.(type) {
	case nil:
		return c.encodeString(nil)
	case bool:
		return c.encodeBoolean(t)
	case time.Time:
		return c.encodeDate(t)
	case decimal.Decimal:
		return c.encodeDecimal(t)
	case string:
		return c.encodeString(t)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.encodeInteger(x)
	case reflect.Float32, reflect.Float64:
		if isIntegral(rv.Float()) {
			return c.encodeInteger(x)
		}
		return c.encodeDecimal(x)
	default:
		return c.encodeString(x)
	}
}

// EncodeAs converts x into a wire value of kind k. Input of the wrong shape
// yields a value of kind k without payload. KindUnknown yields nil.
func (c Codec) EncodeAs(x any, k Kind) *Value {
	switch k {
	case KindInteger:
		return c.encodeInteger(x)
	case KindDecimal:
		return c.encodeDecimal(x)
	case KindBoolean:
		return c.encodeBoolean(x)
	case KindString:
		return c.encodeString(x)
	case KindDate:
		return c.encodeDate(x)
	case KindUnknown:
		return nil
	default:
		return nil
	}
}

func (c Codec) encodeInteger(x any) *Value {
	digits, ok := integerDigits(indirect(x))
	if !ok {
		return Empty(KindInteger)
	}
	// Too wide for the wire integer: send the same digits as a decimal.
	if len(strings.TrimPrefix(digits, "-")) >= c.integerWidth() {
		return Dec(digits, 0)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Dec(digits, 0)
	}
	return Int(n)
}

func (c Codec) encodeDecimal(x any) *Value {
	x = indirect(x)
	if IsEmpty(x) {
		return Empty(KindDecimal)
	}
	digits, ok := decimalDigits(x)
	if !ok {
		return Empty(KindDecimal)
	}
	return Dec(digits, scaleOf(digits))
}

func (c Codec) encodeBoolean(x any) *Value {
	switch t := indirect(x).(type) {
	case bool:
		return Bool(t)
	case string:
		return Bool(strings.TrimSpace(t) != "N")
	default:
		return Bool(truthy(t))
	}
}

func (c Codec) encodeDate(x any) *Value {
	if t, ok := indirect(x).(time.Time); ok {
		return Date(t.UnixMilli())
	}
	return Empty(KindDate)
}

func (c Codec) encodeString(x any) *Value {
	x = indirect(x)
	if !truthy(x) {
		return Empty(KindString)
	}
	s, err := cast.ToStringE(x)
	if err != nil {
		s = fmt.Sprint(x)
	}
	return Str(s)
}

// scaleOf counts the characters after the decimal point.
func scaleOf(digits string) int32 {
	i := strings.IndexByte(digits, '.')
	if i < 0 {
		return 0
	}
	return int32(len(digits) - i - 1)
}

// integerDigits renders an integral x in base 10.
func integerDigits(x any) (string, bool) {
	switch t := x.(type) {
	case nil:
		return "", false
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil || !d.IsInteger() {
			return "", false
		}
		return d.String(), true
	case decimal.Decimal:
		if !t.IsInteger() {
			return "", false
		}
		return t.String(), true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if !isIntegral(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// decimalDigits renders x without exponent. Integral numbers get exactly
// two fractional digits; strings keep the caller's rendering.
func decimalDigits(x any) (string, bool) {
	switch t := x.(type) {
	case string:
		s := strings.TrimSpace(t)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return "", false
		}
		if strings.ContainsAny(s, "eE") {
			return renderDecimal(d), true
		}
		return s, true
	case decimal.Decimal:
		return renderDecimal(t), true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()).StringFixed(integralScale), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		d := decimal.RequireFromString(strconv.FormatUint(rv.Uint(), 10))
		return d.StringFixed(integralScale), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		if isIntegral(f) {
			return decimal.NewFromFloat(f).StringFixed(integralScale), true
		}
		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), true
	}
	return "", false
}

// renderDecimal keeps the fractional digits d was built with.
func renderDecimal(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(integralScale)
	}
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// truthy follows the loose truth test of the service's web clients:
// nil, zero numbers, NaN and "" are false, everything else is true.
func truthy(x any) bool {
	switch t := x.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case decimal.Decimal:
		return !t.IsZero()
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() != 0
	}
	return true
}

// indirect follows pointers; a nil pointer becomes a plain nil.
func indirect(x any) any {
	if x == nil {
		return nil
	}
	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
