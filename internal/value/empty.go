package value

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// IsEmpty reports whether x counts as "not set".
//
// Scalars are never empty except for nil, NaN, blank strings and the "-1"
// no-selection sentinel. Containers are empty when they hold no elements;
// their elements are not inspected.
func IsEmpty(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return math.IsNaN(f) || f == -1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == -1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128, reflect.Bool:
		return false
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		return s == "" || s == "-1"
	case reflect.Func:
		return rv.IsNil()
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Struct:
		switch rv.Type() {
		case timeType:
			return false
		case decimalType:
			return rv.Interface().(decimal.Decimal).Equal(decimal.NewFromInt(-1))
		}
		return rv.NumField() == 0
	default:
		return true
	}
}
