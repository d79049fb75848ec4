package criteria

import "github.com/tuannm99/bizconv/internal/value"

// ---- wire messages ----

// KeyValue is a named parameter.
type KeyValue struct {
	Key   string       `json:"key" yaml:"key" cbor:"1,keyasint"`
	Value *value.Value `json:"value,omitempty" yaml:"value,omitempty" cbor:"2,keyasint,omitempty"`
}

// Selection is a set of parameters scoped to one selected record.
type Selection struct {
	SelectionID   int64      `json:"selectionId" yaml:"selectionId" cbor:"1,keyasint"`
	SelectionUUID string     `json:"selectionUuid,omitempty" yaml:"selectionUuid,omitempty" cbor:"2,keyasint,omitempty"`
	Values        []KeyValue `json:"values,omitempty" yaml:"values,omitempty" cbor:"3,keyasint,omitempty"`
}

// Condition is one filter predicate. Value/ValueTo serve unary and range
// operators, Values serves multi-value operators.
type Condition struct {
	ColumnName string         `json:"columnName" yaml:"columnName" cbor:"1,keyasint"`
	Operator   Operator       `json:"operator" yaml:"operator" cbor:"2,keyasint"`
	Value      *value.Value   `json:"value,omitempty" yaml:"value,omitempty" cbor:"3,keyasint,omitempty"`
	ValueTo    *value.Value   `json:"valueTo,omitempty" yaml:"valueTo,omitempty" cbor:"4,keyasint,omitempty"`
	Values     []*value.Value `json:"values,omitempty" yaml:"values,omitempty" cbor:"5,keyasint,omitempty"`
}

// Clone returns a deep copy of c. A nil c yields nil.
func (c *Condition) Clone() *Condition {
	if c == nil {
		return nil
	}
	out := &Condition{
		ColumnName: c.ColumnName,
		Operator:   c.Operator,
		Value:      c.Value.Clone(),
		ValueTo:    c.ValueTo.Clone(),
	}
	if c.Values != nil {
		out.Values = make([]*value.Value, len(c.Values))
		for i, v := range c.Values {
			out.Values[i] = v.Clone()
		}
	}
	return out
}

// OrderByColumn is one sort key; slice order is sort precedence.
type OrderByColumn struct {
	ColumnName string    `json:"columnName" yaml:"columnName" cbor:"1,keyasint"`
	OrderType  OrderType `json:"orderType" yaml:"orderType" cbor:"2,keyasint"`
}

// Criteria is a structured query descriptor. Values bind positionally into
// Query/WhereClause, so their order is part of the contract.
type Criteria struct {
	TableName      string           `json:"tableName" yaml:"tableName" cbor:"1,keyasint"`
	Query          string           `json:"query,omitempty" yaml:"query,omitempty" cbor:"2,keyasint,omitempty"`
	WhereClause    string           `json:"whereClause,omitempty" yaml:"whereClause,omitempty" cbor:"3,keyasint,omitempty"`
	OrderByClause  string           `json:"orderByClause,omitempty" yaml:"orderByClause,omitempty" cbor:"4,keyasint,omitempty"`
	ReferenceUUID  string           `json:"referenceUuid,omitempty" yaml:"referenceUuid,omitempty" cbor:"5,keyasint,omitempty"`
	Conditions     []*Condition     `json:"conditions,omitempty" yaml:"conditions,omitempty" cbor:"6,keyasint,omitempty"`
	Values         []*value.Value   `json:"values,omitempty" yaml:"values,omitempty" cbor:"7,keyasint,omitempty"`
	OrderByColumns []*OrderByColumn `json:"orderByColumns,omitempty" yaml:"orderByColumns,omitempty" cbor:"8,keyasint,omitempty"`
	Limit          int64            `json:"limit,omitempty" yaml:"limit,omitempty" cbor:"9,keyasint,omitempty"`
}

// ---- caller-side parameters ----

// ConditionParams describes a condition with native values.
// An empty Operator means EQUAL.
type ConditionParams struct {
	ColumnName string `json:"columnName" yaml:"columnName" mapstructure:"columnName"`
	Value      any    `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
	ValueTo    any    `json:"valueTo,omitempty" yaml:"valueTo,omitempty" mapstructure:"valueTo"`
	Values     []any  `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
	Operator   string `json:"operator,omitempty" yaml:"operator,omitempty" mapstructure:"operator"`
}

// CriteriaParams describes a query with native values.
type CriteriaParams struct {
	TableName      string            `json:"tableName" yaml:"tableName" mapstructure:"tableName"`
	Query          string            `json:"query,omitempty" yaml:"query,omitempty" mapstructure:"query"`
	WhereClause    string            `json:"whereClause,omitempty" yaml:"whereClause,omitempty" mapstructure:"whereClause"`
	OrderByClause  string            `json:"orderByClause,omitempty" yaml:"orderByClause,omitempty" mapstructure:"orderByClause"`
	ReferenceUUID  string            `json:"referenceUuid,omitempty" yaml:"referenceUuid,omitempty" mapstructure:"referenceUuid"`
	Conditions     []ConditionParams `json:"conditions,omitempty" yaml:"conditions,omitempty" mapstructure:"conditions"`
	Values         []any             `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
	OrderByColumns []OrderByColumn   `json:"orderByColumns,omitempty" yaml:"orderByColumns,omitempty" mapstructure:"orderByColumns"`
	Limit          int64             `json:"limit,omitempty" yaml:"limit,omitempty" mapstructure:"limit"`
}

// ---- native (decoded) shapes ----

// NativeOrderBy is a decoded OrderByColumn with its direction's name.
type NativeOrderBy struct {
	ColumnName    string    `json:"columnName" yaml:"columnName"`
	OrderType     OrderType `json:"orderType" yaml:"orderType"`
	OrderTypeName string    `json:"orderTypeName,omitempty" yaml:"orderTypeName,omitempty"`
}

// NativeCriteria is a decoded Criteria. Conditions stay in wire form.
type NativeCriteria struct {
	TableName      string          `json:"tableName,omitempty" yaml:"tableName,omitempty"`
	Query          string          `json:"query,omitempty" yaml:"query,omitempty"`
	WhereClause    string          `json:"whereClause,omitempty" yaml:"whereClause,omitempty"`
	OrderByClause  string          `json:"orderByClause,omitempty" yaml:"orderByClause,omitempty"`
	ReferenceUUID  string          `json:"referenceUuid,omitempty" yaml:"referenceUuid,omitempty"`
	Conditions     []*Condition    `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Values         []any           `json:"values,omitempty" yaml:"values,omitempty"`
	OrderByColumns []NativeOrderBy `json:"orderByColumns,omitempty" yaml:"orderByColumns,omitempty"`
	Limit          int64           `json:"limit,omitempty" yaml:"limit,omitempty"`
}
