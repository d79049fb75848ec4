package value

// Value is the tagged union exchanged with the business-data service.
// Only the payload matching Kind is meaningful; a nil payload means the
// sender set no value.
type Value struct {
	Kind    Kind     `json:"kind" yaml:"kind" cbor:"1,keyasint"`
	Int     *int64   `json:"int,omitempty" yaml:"int,omitempty" cbor:"2,keyasint,omitempty"`
	Decimal *Decimal `json:"decimal,omitempty" yaml:"decimal,omitempty" cbor:"3,keyasint,omitempty"`
	Bool    *bool    `json:"bool,omitempty" yaml:"bool,omitempty" cbor:"4,keyasint,omitempty"`
	Str     *string  `json:"str,omitempty" yaml:"str,omitempty" cbor:"5,keyasint,omitempty"`
	Millis  *int64   `json:"millis,omitempty" yaml:"millis,omitempty" cbor:"6,keyasint,omitempty"`
}

// Decimal carries an exact decimal as its rendered digits plus the number of
// fractional digits in that rendering.
type Decimal struct {
	Digits string `json:"digits" yaml:"digits" cbor:"1,keyasint"`
	Scale  int32  `json:"scale" yaml:"scale" cbor:"2,keyasint"`
}

// HasPayload reports whether the payload for v.Kind is set.
func (v *Value) HasPayload() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Int != nil
	case KindDecimal:
		return v.Decimal != nil
	case KindBoolean:
		return v.Bool != nil
	case KindString:
		return v.Str != nil
	case KindDate:
		return v.Millis != nil
	default:
		return false
	}
}

// ---- constructors for already-typed payloads ----

func Int(n int64) *Value { return &Value{Kind: KindInteger, Int: &n} }
func Bool(b bool) *Value { return &Value{Kind: KindBoolean, Bool: &b} }
func Str(s string) *Value {
	return &Value{Kind: KindString, Str: &s}
}
func Date(ms int64) *Value { return &Value{Kind: KindDate, Millis: &ms} }
func Dec(digits string, scale int32) *Value {
	return &Value{Kind: KindDecimal, Decimal: &Decimal{Digits: digits, Scale: scale}}
}

// Empty returns a value of kind k without payload.
func Empty(k Kind) *Value { return &Value{Kind: k} }

// Clone returns a deep copy of v. A nil v yields nil.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{Kind: v.Kind}
	if v.Int != nil {
		n := *v.Int
		out.Int = &n
	}
	if v.Decimal != nil {
		d := *v.Decimal
		out.Decimal = &d
	}
	if v.Bool != nil {
		b := *v.Bool
		out.Bool = &b
	}
	if v.Str != nil {
		s := *v.Str
		out.Str = &s
	}
	if v.Millis != nil {
		ms := *v.Millis
		out.Millis = &ms
	}
	return out
}
