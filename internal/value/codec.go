package value

// DefaultIntegerWidth is the digit count (sign excluded) at which an integer
// no longer fits the wire integer field and is sent as a decimal instead.
const DefaultIntegerWidth = 11

// integralScale is the number of fractional digits an integral number gets
// when it is encoded as a decimal.
const integralScale = 2

// Codec converts between wire values and native Go values.
// The zero Codec uses the defaults.
type Codec struct {
	// UppercaseStrings upper-cases STRING payloads on decode.
	UppercaseStrings bool
	// IntegerWidth overrides DefaultIntegerWidth when > 0.
	IntegerWidth int
}

var defaultCodec Codec

func (c Codec) integerWidth() int {
	if c.IntegerWidth > 0 {
		return c.IntegerWidth
	}
	return DefaultIntegerWidth
}

// Decode converts v with the default codec.
func Decode(v *Value) any { return defaultCodec.Decode(v) }

// Encode converts x with the default codec, inferring the kind.
func Encode(x any) *Value { return defaultCodec.Encode(x) }

// EncodeAs converts x with the default codec into kind k.
func EncodeAs(x any, k Kind) *Value { return defaultCodec.EncodeAs(x, k) }
