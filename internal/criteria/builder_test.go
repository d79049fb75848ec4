package criteria

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tuannm99/bizconv/internal/value"
)

func TestBuildCondition_DefaultsToEqual(t *testing.T) {
	c := BuildCondition(ConditionParams{ColumnName: "Name", Value: "a"})

	require.Equal(t, "Name", c.ColumnName)
	require.Equal(t, OpEqual, c.Operator)
	require.NotNil(t, c.Value)
	require.Equal(t, "a", value.Decode(c.Value))
	require.Nil(t, c.ValueTo)
	require.Empty(t, c.Values)
}

func TestBuildCondition_Operators(t *testing.T) {
	c := BuildCondition(ConditionParams{ColumnName: "Qty", Operator: "BETWEEN", Value: 1, ValueTo: 10})
	require.Equal(t, OpBetween, c.Operator)
	require.Equal(t, int64(1), value.Decode(c.Value))
	require.Equal(t, int64(10), value.Decode(c.ValueTo))

	c = BuildCondition(ConditionParams{ColumnName: "Qty", Operator: "greater_equal", Value: 3})
	require.Equal(t, OpGreaterEqual, c.Operator)
}

func TestBuildCondition_UnknownOperatorFallsBackAndWarns(t *testing.T) {
	var buf bytes.Buffer
	b := Builder{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	c := b.BuildCondition(ConditionParams{ColumnName: "X", Operator: "SOUNDS_LIKE", Value: "y"})
	require.Equal(t, OpEqual, c.Operator)
	require.Contains(t, buf.String(), "unknown operator")
	require.Contains(t, buf.String(), "SOUNDS_LIKE")
}

func TestBuildCondition_PresenceNotEmptiness(t *testing.T) {
	var nilTime *time.Time

	c := BuildCondition(ConditionParams{ColumnName: "A", Value: nil, ValueTo: nilTime})
	require.Nil(t, c.Value)
	require.Nil(t, c.ValueTo)

	// "" and 0 are present values, they are encoded
	c = BuildCondition(ConditionParams{ColumnName: "A", Value: "", ValueTo: 0})
	require.NotNil(t, c.Value)
	require.Equal(t, value.KindString, c.Value.Kind)
	require.NotNil(t, c.ValueTo)
	require.Equal(t, value.KindInteger, c.ValueTo.Kind)
	require.Equal(t, int64(0), value.Decode(c.ValueTo))
}

func TestBuildCondition_ValuesKeepOrder(t *testing.T) {
	c := BuildCondition(ConditionParams{
		ColumnName: "C_DocType_ID",
		Operator:   "IN",
		Values:     []any{3, "x", nil, true},
	})
	require.Equal(t, OpIn, c.Operator)
	require.Len(t, c.Values, 4)
	assert.Equal(t, int64(3), value.Decode(c.Values[0]))
	assert.Equal(t, "x", value.Decode(c.Values[1]))
	// nil elements are still encoded, as STRING without payload
	require.NotNil(t, c.Values[2])
	assert.Equal(t, value.KindString, c.Values[2].Kind)
	assert.Nil(t, value.Decode(c.Values[2]))
	assert.Equal(t, true, value.Decode(c.Values[3]))
}

func TestBuildCriteria(t *testing.T) {
	c := BuildCriteria(CriteriaParams{
		TableName:  "AD_Table",
		Values:     []any{1, "x"},
		Conditions: []ConditionParams{{ColumnName: "Name", Value: "a"}},
	})

	require.Equal(t, "AD_Table", c.TableName)
	require.Len(t, c.Values, 2)
	assert.Equal(t, int64(1), value.Decode(c.Values[0]))
	assert.Equal(t, "x", value.Decode(c.Values[1]))

	require.Len(t, c.Conditions, 1)
	assert.Equal(t, OpEqual, c.Conditions[0].Operator)
	assert.Equal(t, "Name", c.Conditions[0].ColumnName)
}

func TestBuildCriteria_CopiesScalarsAndOrdering(t *testing.T) {
	p := CriteriaParams{
		TableName:     "C_Order",
		Query:         "SELECT * FROM C_Order WHERE DocStatus = ?",
		WhereClause:   "IsActive = ?",
		OrderByClause: "DateOrdered DESC",
		ReferenceUUID: "8d3b5a8e-1f2c-4a7b-9d1e-3c2b1a0f9e8d",
		Limit:         50,
		OrderByColumns: []OrderByColumn{
			{ColumnName: "DateOrdered", OrderType: Descending},
			{ColumnName: "DocumentNo", OrderType: Ascending},
		},
	}
	c := BuildCriteria(p)

	assert.Equal(t, p.Query, c.Query)
	assert.Equal(t, p.WhereClause, c.WhereClause)
	assert.Equal(t, p.OrderByClause, c.OrderByClause)
	assert.Equal(t, p.ReferenceUUID, c.ReferenceUUID)
	assert.Equal(t, int64(50), c.Limit)

	require.Len(t, c.OrderByColumns, 2)
	assert.Equal(t, "DateOrdered", c.OrderByColumns[0].ColumnName)
	assert.Equal(t, Descending, c.OrderByColumns[0].OrderType)
	assert.Equal(t, "DocumentNo", c.OrderByColumns[1].ColumnName)

	// output does not alias caller input
	p.OrderByColumns[0].ColumnName = "Changed"
	assert.Equal(t, "DateOrdered", c.OrderByColumns[0].ColumnName)
}

func TestBuildCriteria_Empty(t *testing.T) {
	c := BuildCriteria(CriteriaParams{TableName: "M_Product"})
	require.Equal(t, "M_Product", c.TableName)
	require.Nil(t, c.Values)
	require.Nil(t, c.Conditions)
	require.Nil(t, c.OrderByColumns)
}

func TestDecodeCriteria_RoundTrip(t *testing.T) {
	when := time.UnixMilli(1700000000000).UTC()
	wire := BuildCriteria(CriteriaParams{
		TableName:      "C_Invoice",
		WhereClause:    "GrandTotal > ? AND DateInvoiced >= ?",
		Values:         []any{12.5, when, "N"},
		Conditions:     []ConditionParams{{ColumnName: "IsPaid", Value: false}},
		OrderByColumns: []OrderByColumn{{ColumnName: "DateInvoiced", OrderType: Descending}},
		Limit:          10,
	})

	got := DecodeCriteria(wire)
	assert.Equal(t, "C_Invoice", got.TableName)
	assert.Equal(t, wire.WhereClause, got.WhereClause)
	assert.Equal(t, int64(10), got.Limit)

	require.Len(t, got.Values, 3)
	assert.InDelta(t, 12.5, got.Values[0].(float64), 1e-12)
	assert.True(t, when.Equal(got.Values[1].(time.Time)))
	assert.Equal(t, "N", got.Values[2])

	require.Len(t, got.OrderByColumns, 1)
	assert.Equal(t, NativeOrderBy{ColumnName: "DateInvoiced", OrderType: Descending, OrderTypeName: "DESCENDING"}, got.OrderByColumns[0])

	require.Len(t, got.Conditions, 1)
	assert.Equal(t, wire.Conditions[0], got.Conditions[0])
	assert.NotSame(t, wire.Conditions[0], got.Conditions[0])
}

func TestDecodeCriteria_ConditionsAreCopies(t *testing.T) {
	wire := BuildCriteria(CriteriaParams{
		TableName: "M_Product",
		Conditions: []ConditionParams{
			{ColumnName: "Name", Operator: "SQL", Value: "abc", ValueTo: 5},
			{ColumnName: "M_Product_ID", Operator: "IN", Values: []any{1, 2}},
		},
	})

	got := DecodeCriteria(wire)
	require.Len(t, got.Conditions, 2)

	got.Conditions[0].ColumnName = "Mutated"
	got.Conditions[0].Operator = OpEqual
	*got.Conditions[0].Value.Str = "changed"
	*got.Conditions[0].ValueTo.Int = 99
	*got.Conditions[1].Values[0].Int = 42
	got.Conditions[1].Values[1] = nil

	assert.Equal(t, "Name", wire.Conditions[0].ColumnName)
	assert.Equal(t, OpSQL, wire.Conditions[0].Operator)
	assert.Equal(t, "abc", value.Decode(wire.Conditions[0].Value))
	assert.Equal(t, int64(5), value.Decode(wire.Conditions[0].ValueTo))
	assert.Equal(t, int64(1), value.Decode(wire.Conditions[1].Values[0]))
	assert.NotNil(t, wire.Conditions[1].Values[1])
}

func TestDecodeCriteria_Nil(t *testing.T) {
	got := DecodeCriteria(nil)
	assert.Equal(t, NativeCriteria{}, got)
	assert.Nil(t, got.Values)
}

func TestDecodeOrderBy(t *testing.T) {
	assert.Equal(t, NativeOrderBy{}, DecodeOrderBy(nil))

	got := DecodeOrderBy(&OrderByColumn{ColumnName: "Name", OrderType: OrderType(99)})
	assert.Equal(t, OrderType(99), got.OrderType)
	assert.Empty(t, got.OrderTypeName)
}

func TestOrderTypeTable(t *testing.T) {
	code, ok := OrderTypeTable.CodeOf("ASCENDING")
	require.True(t, ok)
	assert.Equal(t, Ascending, code)

	name, ok := OrderTypeTable.NameOf(0)
	require.True(t, ok)
	assert.Equal(t, "ASCENDING", name)

	_, ok = OrderTypeTable.NameOf(99)
	assert.False(t, ok)
}

func TestBuildSelection(t *testing.T) {
	s := BuildSelection(1000016, "", []SelectionValue{
		{ColumnName: "Qty", Value: 4},
		{ColumnName: "IsSOTrx", Value: "Y", Kind: value.KindBoolean},
		{ColumnName: "Price", Value: 7, Kind: value.KindDecimal},
	})

	require.Equal(t, int64(1000016), s.SelectionID)
	require.Len(t, s.Values, 3)
	assert.Equal(t, "Qty", s.Values[0].Key)
	assert.Equal(t, int64(4), value.Decode(s.Values[0].Value))
	assert.Equal(t, true, value.Decode(s.Values[1].Value))
	assert.Equal(t, value.Decimal{Digits: "7.00", Scale: 2}, *s.Values[2].Value.Decimal)
}

func TestDecodeValuesMapAndList(t *testing.T) {
	m := map[string]*value.Value{
		"Name":     value.Str("Joe"),
		"C_BP_ID":  value.Int(11),
		"Inactive": {Kind: value.KindUnknown},
	}

	got := DecodeValuesMap(m)
	require.Len(t, got, 3)
	assert.Equal(t, "Joe", got["Name"])
	assert.Equal(t, int64(11), got["C_BP_ID"])
	v, ok := got["Inactive"]
	assert.True(t, ok)
	assert.Nil(t, v)

	list := DecodeValuesList(m)
	require.Len(t, list, 3)
	assert.Equal(t, "C_BP_ID", list[0].Key)
	assert.Equal(t, "Inactive", list[1].Key)
	assert.Equal(t, "Name", list[2].Key)

	assert.Nil(t, DecodeValuesMap(nil))
	assert.Nil(t, DecodeValuesList(nil))
}

func TestBuilder_UsesConfiguredCodec(t *testing.T) {
	b := Builder{Codec: value.Codec{UppercaseStrings: true, IntegerWidth: 4}}

	c := b.BuildCriteria(CriteriaParams{TableName: "T", Values: []any{12345, "abc"}})
	require.Equal(t, value.KindDecimal, c.Values[0].Kind)

	got := b.DecodeCriteria(c)
	assert.Equal(t, "ABC", got.Values[1])
}

func TestOrderType_UnmarshalNameOrCode(t *testing.T) {
	var p CriteriaParams
	require.NoError(t, yaml.Unmarshal([]byte(`
tableName: C_Order
orderByColumns:
  - {columnName: DateOrdered, orderType: DESCENDING}
  - {columnName: DocumentNo, orderType: ascending}
  - {columnName: Created, orderType: 1}
`), &p))
	require.Len(t, p.OrderByColumns, 3)
	assert.Equal(t, Descending, p.OrderByColumns[0].OrderType)
	assert.Equal(t, Ascending, p.OrderByColumns[1].OrderType)
	assert.Equal(t, Descending, p.OrderByColumns[2].OrderType)

	var o OrderByColumn
	require.NoError(t, json.Unmarshal([]byte(`{"columnName":"Name","orderType":"DESCENDING"}`), &o))
	assert.Equal(t, Descending, o.OrderType)
	require.NoError(t, json.Unmarshal([]byte(`{"columnName":"Name","orderType":0}`), &o))
	assert.Equal(t, Ascending, o.OrderType)

	require.Error(t, yaml.Unmarshal([]byte(`orderType: SIDEWAYS`), &o))
	require.Error(t, json.Unmarshal([]byte(`{"orderType":"SIDEWAYS"}`), &o))
}
