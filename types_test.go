package bizconv

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFacade_Properties(t *testing.T) {
	t.Run("integer_round_trip", func(t *testing.T) {
		for _, n := range []int64{0, 5, -77, 1234567890} {
			v := Encode(n)
			require.Equal(t, KindInteger, v.Kind)
			require.Equal(t, n, Decode(v))
		}
	})

	t.Run("wide_integer", func(t *testing.T) {
		v := Encode(int64(98765432101))
		require.Equal(t, KindDecimal, v.Kind)
		require.Equal(t, int32(0), v.Decimal.Scale)
	})

	t.Run("decimal_scale", func(t *testing.T) {
		require.Equal(t, Decimal{Digits: "12.5", Scale: 1}, *Encode(12.5).Decimal)
		require.Equal(t, Decimal{Digits: "7.00", Scale: 2}, *EncodeAs(7, KindDecimal).Decimal)
	})

	t.Run("booleans", func(t *testing.T) {
		require.Equal(t, true, Decode(Encode(true)))
		require.Equal(t, false, Decode(Encode(false)))
		require.Equal(t, false, Decode(EncodeAs("N", KindBoolean)))
		require.Equal(t, true, Decode(EncodeAs("Y", KindBoolean)))
		require.Equal(t, true, Decode(EncodeAs("anything-else", KindBoolean)))
	})

	t.Run("emptiness", func(t *testing.T) {
		require.True(t, IsEmpty([]any{}))
		require.True(t, IsEmpty(struct{}{}))
		require.True(t, IsEmpty(map[string]any{}))
		require.True(t, IsEmpty("-1"))
		require.True(t, IsEmpty(math.NaN()))
		require.False(t, IsEmpty(map[int]int{0: 1}))
		require.False(t, IsEmpty(0))
	})

	t.Run("dates", func(t *testing.T) {
		got := Decode(&Value{Kind: KindDate, Millis: ptr(int64(1700000000000))})
		require.Equal(t, int64(1700000000000), got.(time.Time).UnixMilli())
		require.Nil(t, Decode(&Value{Kind: KindDate, Millis: ptr(int64(0))}))
		require.Nil(t, Decode(&Value{Kind: KindDate, Millis: ptr(int64(-5))}))
	})

	t.Run("unknown", func(t *testing.T) {
		require.Nil(t, Decode(&Value{Kind: KindUnknown, Int: ptr(int64(3))}))
	})
}

func TestFacade_Criteria(t *testing.T) {
	c := BuildCriteria(CriteriaParams{
		TableName:  "AD_Table",
		Values:     []any{1, "x"},
		Conditions: []ConditionParams{{ColumnName: "Name", Value: "a"}},
	})
	require.Len(t, c.Values, 2)
	require.Len(t, c.Conditions, 1)
	require.Equal(t, "EQUAL", c.Conditions[0].Operator.String())

	got := DecodeCriteria(c)
	require.Equal(t, []any{int64(1), "x"}, got.Values)

	cond := BuildCondition(ConditionParams{ColumnName: "Qty", Operator: "LESS", Value: 3})
	require.Equal(t, "LESS", cond.Operator.String())
}

func ptr[T any](v T) *T { return &v }

func TestFacade_ParametersAndRecords(t *testing.T) {
	kv := BuildParameter("C_BPartner_ID", 1000, KindUnknown)
	require.Equal(t, "C_BPartner_ID", kv.Key)
	require.Equal(t, int64(1000), Decode(kv.Value))

	kv = BuildParameter("Amount", 7, KindDecimal)
	require.Equal(t, Decimal{Digits: "7.00", Scale: 2}, *kv.Value.Decimal)

	sel := BuildSelection(42, "uuid-42", []SelectionValue{
		{ColumnName: "Name", Value: "Joe"},
		{ColumnName: "IsActive", Value: "N", Kind: KindBoolean},
	})
	require.Equal(t, int64(42), sel.SelectionID)
	require.Len(t, sel.Values, 2)
	require.Equal(t, false, Decode(sel.Values[1].Value))

	values := map[string]*Value{"b": Encode("x"), "a": Encode(2)}
	require.Equal(t, map[string]any{"a": int64(2), "b": "x"}, DecodeValuesMap(values))
	require.Equal(t, []NamedValue{{Key: "a", Value: int64(2)}, {Key: "b", Value: "x"}}, DecodeValuesList(values))

	e := &Entity{ID: 7, TableName: "C_Country", Values: values}
	require.Equal(t, "x", DecodeEntity(e).Values["b"])
	require.Equal(t, "a", DecodeEntityList(e).Values[0].Key)
	require.Equal(t, int64(7), DecodeLookup((*Lookup)(e)).ID)
}
