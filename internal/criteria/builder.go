package criteria

import (
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/tuannm99/bizconv/internal/value"
)

// Builder assembles wire criteria using a configured value codec.
// The zero Builder uses the default codec and slog.Default.
type Builder struct {
	Codec  value.Codec
	Logger *slog.Logger
}

var defaultBuilder Builder

func (b Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// BuildCondition encodes p. Value and ValueTo are sent only when present;
// zero values such as "" or 0 are present. Every element of Values is sent.
func (b Builder) BuildCondition(p ConditionParams) *Condition {
	c := &Condition{
		ColumnName: p.ColumnName,
		Operator:   b.operator(p.ColumnName, p.Operator),
	}
	if present(p.Value) {
		c.Value = b.Codec.Encode(p.Value)
	}
	if present(p.ValueTo) {
		c.ValueTo = b.Codec.Encode(p.ValueTo)
	}
	if len(p.Values) > 0 {
		c.Values = make([]*value.Value, 0, len(p.Values))
		for _, x := range p.Values {
			c.Values = append(c.Values, b.Codec.Encode(x))
		}
	}
	return c
}

func (b Builder) operator(column, name string) Operator {
	name = strings.TrimSpace(name)
	if name == "" {
		return OpEqual
	}
	op, ok := OperatorTable.CodeOf(strings.ToUpper(name))
	if !ok {
		b.logger().Warn("criteria: unknown operator, using EQUAL", "column", column, "operator", name)
		return OpEqual
	}
	return op
}

// BuildCriteria encodes p. Values and Conditions keep the caller's order.
func (b Builder) BuildCriteria(p CriteriaParams) *Criteria {
	c := &Criteria{
		TableName:     p.TableName,
		Query:         p.Query,
		WhereClause:   p.WhereClause,
		OrderByClause: p.OrderByClause,
		ReferenceUUID: p.ReferenceUUID,
		Limit:         p.Limit,
	}
	if len(p.Values) > 0 {
		c.Values = make([]*value.Value, 0, len(p.Values))
		for _, x := range p.Values {
			c.Values = append(c.Values, b.Codec.Encode(x))
		}
	}
	if len(p.Conditions) > 0 {
		c.Conditions = make([]*Condition, 0, len(p.Conditions))
		for _, cp := range p.Conditions {
			c.Conditions = append(c.Conditions, b.BuildCondition(cp))
		}
	}
	if len(p.OrderByColumns) > 0 {
		c.OrderByColumns = make([]*OrderByColumn, 0, len(p.OrderByColumns))
		for _, o := range p.OrderByColumns {
			o := o
			c.OrderByColumns = append(c.OrderByColumns, &o)
		}
	}
	return c
}

// DecodeCriteria converts c back to native values. Conditions are handed
// back as copies of the wire messages; there is no native condition form.
func (b Builder) DecodeCriteria(c *Criteria) NativeCriteria {
	if c == nil {
		return NativeCriteria{}
	}
	out := NativeCriteria{
		TableName:     c.TableName,
		Query:         c.Query,
		WhereClause:   c.WhereClause,
		OrderByClause: c.OrderByClause,
		ReferenceUUID: c.ReferenceUUID,
		Limit:         c.Limit,
		Values:        make([]any, 0, len(c.Values)),
		Conditions:    make([]*Condition, 0, len(c.Conditions)),
	}
	for _, v := range c.Values {
		out.Values = append(out.Values, b.Codec.Decode(v))
	}
	for _, cond := range c.Conditions {
		out.Conditions = append(out.Conditions, cond.Clone())
	}
	out.OrderByColumns = make([]NativeOrderBy, 0, len(c.OrderByColumns))
	for _, o := range c.OrderByColumns {
		out.OrderByColumns = append(out.OrderByColumns, DecodeOrderBy(o))
	}
	return out
}

// DecodeOrderBy names the direction of o. A nil o yields the zero shape.
func DecodeOrderBy(o *OrderByColumn) NativeOrderBy {
	if o == nil {
		return NativeOrderBy{}
	}
	name, _ := OrderTypeTable.NameOf(o.OrderType)
	return NativeOrderBy{
		ColumnName:    o.ColumnName,
		OrderType:     o.OrderType,
		OrderTypeName: name,
	}
}

// BuildParameter encodes one named parameter. Kind KindUnknown infers the
// wire kind from x.
func (b Builder) BuildParameter(column string, x any, k value.Kind) KeyValue {
	kv := KeyValue{Key: column}
	if k == value.KindUnknown {
		kv.Value = b.Codec.Encode(x)
	} else {
		kv.Value = b.Codec.EncodeAs(x, k)
	}
	return kv
}

// SelectionValue is one column of a selected record.
type SelectionValue struct {
	ColumnName string     `json:"columnName" yaml:"columnName"`
	Value      any        `json:"value,omitempty" yaml:"value,omitempty"`
	Kind       value.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// BuildSelection encodes the parameters of the record identified by id.
func (b Builder) BuildSelection(id int64, uuid string, values []SelectionValue) Selection {
	s := Selection{SelectionID: id, SelectionUUID: uuid}
	if len(values) > 0 {
		s.Values = make([]KeyValue, 0, len(values))
		for _, sv := range values {
			s.Values = append(s.Values, b.BuildParameter(sv.ColumnName, sv.Value, sv.Kind))
		}
	}
	return s
}

// NamedValue is one decoded entry of a values map.
type NamedValue struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// DecodeValuesMap decodes every entry of m. A nil m yields nil.
func (b Builder) DecodeValuesMap(m map[string]*value.Value) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = b.Codec.Decode(v)
	}
	return out
}

// DecodeValuesList decodes m into key-sorted pairs.
func (b Builder) DecodeValuesList(m map[string]*value.Value) []NamedValue {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]NamedValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, NamedValue{Key: k, Value: b.Codec.Decode(m[k])})
	}
	return out
}

// present reports whether x was supplied at all. Typed nil pointers,
// maps and slices count as not supplied.
func present(x any) bool {
	if x == nil {
		return false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return !rv.IsNil()
	}
	return true
}

// ---- package-level helpers using the default codec ----

func BuildCondition(p ConditionParams) *Condition {
	return defaultBuilder.BuildCondition(p)
}

func BuildCriteria(p CriteriaParams) *Criteria {
	return defaultBuilder.BuildCriteria(p)
}

func DecodeCriteria(c *Criteria) NativeCriteria {
	return defaultBuilder.DecodeCriteria(c)
}

func DecodeValuesMap(m map[string]*value.Value) map[string]any {
	return defaultBuilder.DecodeValuesMap(m)
}

func DecodeValuesList(m map[string]*value.Value) []NamedValue {
	return defaultBuilder.DecodeValuesList(m)
}

func BuildParameter(column string, x any, k value.Kind) KeyValue {
	return defaultBuilder.BuildParameter(column, x, k)
}

func BuildSelection(id int64, uuid string, values []SelectionValue) Selection {
	return defaultBuilder.BuildSelection(id, uuid, values)
}
