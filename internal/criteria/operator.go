package criteria

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tuannm99/bizconv/internal/enum"
)

// Operator is the comparison of a Condition.
type Operator int32

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLike
	OpNotLike
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpBetween
	OpNotNull
	OpNull
	OpIn
	OpNotIn
	OpSQL
)

var OperatorTable = enum.New("Operator",
	enum.Entry[Operator]{Name: "EQUAL", Code: OpEqual},
	enum.Entry[Operator]{Name: "NOT_EQUAL", Code: OpNotEqual},
	enum.Entry[Operator]{Name: "LIKE", Code: OpLike},
	enum.Entry[Operator]{Name: "NOT_LIKE", Code: OpNotLike},
	enum.Entry[Operator]{Name: "GREATER", Code: OpGreater},
	enum.Entry[Operator]{Name: "GREATER_EQUAL", Code: OpGreaterEqual},
	enum.Entry[Operator]{Name: "LESS", Code: OpLess},
	enum.Entry[Operator]{Name: "LESS_EQUAL", Code: OpLessEqual},
	enum.Entry[Operator]{Name: "BETWEEN", Code: OpBetween},
	enum.Entry[Operator]{Name: "NOT_NULL", Code: OpNotNull},
	enum.Entry[Operator]{Name: "NULL", Code: OpNull},
	enum.Entry[Operator]{Name: "IN", Code: OpIn},
	enum.Entry[Operator]{Name: "NOT_IN", Code: OpNotIn},
	enum.Entry[Operator]{Name: "SQL", Code: OpSQL},
)

func (o Operator) String() string { return OperatorTable.String(o) }

// OrderType is the sort direction of an OrderByColumn.
type OrderType int32

const (
	Ascending OrderType = iota
	Descending
)

var OrderTypeTable = enum.New("OrderType",
	enum.Entry[OrderType]{Name: "ASCENDING", Code: Ascending},
	enum.Entry[OrderType]{Name: "DESCENDING", Code: Descending},
)

func (o OrderType) String() string { return OrderTypeTable.String(o) }

// UnmarshalYAML accepts a direction name in any case or its numeric code.
func (o *OrderType) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("criteria: order type must be a scalar, line %d", n.Line)
	}
	return o.parse(n.Value)
}

// UnmarshalJSON accepts a direction name or its numeric code.
func (o *OrderType) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if u, err := strconv.Unquote(s); err == nil {
		s = u
	}
	return o.parse(s)
}

func (o *OrderType) parse(s string) error {
	v, ok := OrderTypeTable.Parse(s)
	if !ok {
		return fmt.Errorf("criteria: unknown order type %q", s)
	}
	*o = v
	return nil
}
