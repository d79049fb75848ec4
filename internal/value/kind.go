package value

import "github.com/tuannm99/bizconv/internal/enum"

// Kind tags which payload of a Value is meaningful.
type Kind int32

const (
	KindUnknown Kind = iota
	KindInteger
	KindDecimal
	KindBoolean
	KindString
	KindDate
)

// KindTable maps kind names to their wire codes.
var KindTable = enum.New("ValueType",
	enum.Entry[Kind]{Name: "UNKNOWN", Code: KindUnknown},
	enum.Entry[Kind]{Name: "INTEGER", Code: KindInteger},
	enum.Entry[Kind]{Name: "DECIMAL", Code: KindDecimal},
	enum.Entry[Kind]{Name: "BOOLEAN", Code: KindBoolean},
	enum.Entry[Kind]{Name: "STRING", Code: KindString},
	enum.Entry[Kind]{Name: "DATE", Code: KindDate},
)

// Kinds lists every kind that carries a payload.
func Kinds() []Kind {
	return []Kind{KindInteger, KindDecimal, KindBoolean, KindString, KindDate}
}

func (k Kind) String() string { return KindTable.String(k) }

// ParseKind resolves a kind by its wire name ("INTEGER", "DATE", ...).
func ParseKind(name string) (Kind, bool) { return KindTable.CodeOf(name) }
