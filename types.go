// Package bizconv converts the business-data service's wire values and query
// criteria to and from native Go values.
package bizconv

import (
	"github.com/tuannm99/bizconv/internal/business"
	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/value"
)

type (
	Value    = value.Value
	Decimal  = value.Decimal
	Kind     = value.Kind
	Codec    = value.Codec
	KeyValue = criteria.KeyValue

	Selection      = criteria.Selection
	SelectionValue = criteria.SelectionValue
	Condition      = criteria.Condition
	OrderByColumn  = criteria.OrderByColumn
	Criteria       = criteria.Criteria
	Operator       = criteria.Operator
	OrderType      = criteria.OrderType

	ConditionParams = criteria.ConditionParams
	CriteriaParams  = criteria.CriteriaParams
	NativeCriteria  = criteria.NativeCriteria
	NativeOrderBy   = criteria.NativeOrderBy
	Builder         = criteria.Builder
	NamedValue      = criteria.NamedValue

	Entity           = business.Entity
	Lookup           = business.Lookup
	NativeEntity     = business.NativeEntity
	NativeEntityList = business.NativeEntityList
	EntityDecoder    = business.Decoder
)

const (
	KindUnknown = value.KindUnknown
	KindInteger = value.KindInteger
	KindDecimal = value.KindDecimal
	KindBoolean = value.KindBoolean
	KindString  = value.KindString
	KindDate    = value.KindDate

	Ascending  = criteria.Ascending
	Descending = criteria.Descending
)

func IsEmpty(x any) bool            { return value.IsEmpty(x) }
func Decode(v *Value) any           { return value.Decode(v) }
func Encode(x any) *Value           { return value.Encode(x) }
func EncodeAs(x any, k Kind) *Value { return value.EncodeAs(x, k) }

func BuildCondition(p ConditionParams) *Condition {
	return criteria.BuildCondition(p)
}

func BuildCriteria(p CriteriaParams) *Criteria {
	return criteria.BuildCriteria(p)
}

func DecodeCriteria(c *Criteria) NativeCriteria {
	return criteria.DecodeCriteria(c)
}

// BuildParameter encodes one named parameter; KindUnknown infers the kind.
func BuildParameter(column string, x any, k Kind) KeyValue {
	return criteria.BuildParameter(column, x, k)
}

func BuildSelection(id int64, uuid string, values []SelectionValue) Selection {
	return criteria.BuildSelection(id, uuid, values)
}

func DecodeValuesMap(m map[string]*Value) map[string]any {
	return criteria.DecodeValuesMap(m)
}

// DecodeValuesList decodes m into pairs sorted by key.
func DecodeValuesList(m map[string]*Value) []NamedValue {
	return criteria.DecodeValuesList(m)
}

func DecodeEntity(e *Entity) NativeEntity {
	return business.DecodeEntity(e)
}

func DecodeEntityList(e *Entity) NativeEntityList {
	return business.DecodeEntityList(e)
}

func DecodeLookup(l *Lookup) NativeEntity {
	return business.DecodeLookup(l)
}
