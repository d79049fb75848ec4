package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/enum"
	"github.com/tuannm99/bizconv/internal/value"
)

func TestEnums_ReflectByNameAndCode(t *testing.T) {
	code, ok := WorkflowStateTable.CodeOf("SUSPENDED")
	require.True(t, ok)
	assert.Equal(t, WorkflowState(4), code)

	name, ok := NodeActionTable.NameOf(12)
	require.True(t, ok)
	assert.Equal(t, "WAIT_SLEEP", name)

	r := RollbackEventTypeTable.Reflect(enum.Lookup[RollbackEventType]{})
	require.Len(t, r.All, 3)
	assert.Equal(t, "DELETE", r.All[2].Name)
}

func TestConditionOperation_HasGapAtThree(t *testing.T) {
	_, ok := ConditionOperationTable.NameOf(3)
	assert.False(t, ok)

	code, ok := ConditionOperationTable.CodeOf("GREATER")
	require.True(t, ok)
	assert.Equal(t, ConditionOperation(4), code)
	assert.Equal(t, "SQL", ConditionOperation(9).String())
}

func TestRegistry(t *testing.T) {
	keys := TableKeys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i])
	}

	for _, k := range keys {
		tbl, ok := Table(k)
		require.True(t, ok, k)
		require.Positive(t, tbl.Len(), k)

		// every pair resolves both ways
		for _, p := range tbl.Pairs() {
			c, ok := tbl.CodeOfName(p.Name)
			require.True(t, ok)
			require.Equal(t, p.Code, c)
		}
	}

	tbl, ok := Table(" Order-Type ")
	require.True(t, ok)
	n, ok := tbl.NameOfCode(1)
	require.True(t, ok)
	assert.Equal(t, "DESCENDING", n)

	_, ok = Table("nope")
	assert.False(t, ok)
}

func TestDecodeEntity(t *testing.T) {
	e := &Entity{
		ID:        1000000,
		UUID:      "a4c8e1b0-fb40-11e8-a479-7a0060f0aa01",
		TableName: "C_BPartner",
		Values: map[string]*value.Value{
			"Name":       value.Str("Seed Farm"),
			"IsCustomer": value.Bool(true),
			"Created":    value.Date(0),
		},
	}

	got := DecodeEntity(e)
	assert.Equal(t, int64(1000000), got.ID)
	assert.Equal(t, "C_BPartner", got.TableName)
	assert.Equal(t, "Seed Farm", got.Values["Name"])
	assert.Equal(t, true, got.Values["IsCustomer"])
	assert.Nil(t, got.Values["Created"])

	assert.Equal(t, NativeEntity{}, DecodeEntity(nil))
	assert.Equal(t, NativeEntity{}, DecodeLookup(nil))
}

func TestDecoder_ListShapeAndCodec(t *testing.T) {
	d := Decoder{Builder: criteria.Builder{Codec: value.Codec{UppercaseStrings: true}}}
	l := &Lookup{
		ID:        5,
		TableName: "C_Country",
		Values: map[string]*value.Value{
			"DisplayColumn": value.Str("venezuela"),
			"CountryCode":   value.Str("ve"),
		},
	}

	got := d.DecodeEntityList((*Entity)(l))
	require.Len(t, got.Values, 2)
	assert.Equal(t, criteria.NamedValue{Key: "CountryCode", Value: "VE"}, got.Values[0])
	assert.Equal(t, criteria.NamedValue{Key: "DisplayColumn", Value: "VENEZUELA"}, got.Values[1])

	assert.Equal(t, "VENEZUELA", d.DecodeLookup(l).Values["DisplayColumn"])
}
