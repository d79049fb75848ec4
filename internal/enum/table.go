package enum

import (
	"strconv"
	"strings"
)

// Entry is one symbolic name and its wire code.
type Entry[T ~int32] struct {
	Name string
	Code T
}

// Table is an ordered name <-> code mapping for one wire enum.
// Declaration order matters: NameOf returns the first name mapped to a code.
type Table[T ~int32] struct {
	name    string
	entries []Entry[T]
	byName  map[string]T
}

// New builds a table. Entries keep the order they are given in.
// A repeated name keeps its first code.
func New[T ~int32](name string, entries ...Entry[T]) Table[T] {
	t := Table[T]{
		name:    name,
		entries: make([]Entry[T], len(entries)),
		byName:  make(map[string]T, len(entries)),
	}
	copy(t.entries, entries)
	for _, e := range entries {
		if _, ok := t.byName[e.Name]; !ok {
			t.byName[e.Name] = e.Code
		}
	}
	return t
}

func (t Table[T]) Name() string { return t.name }
func (t Table[T]) Len() int     { return len(t.entries) }

// CodeOf returns the code for name.
func (t Table[T]) CodeOf(name string) (T, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// NameOf returns the first declared name whose code equals code.
func (t Table[T]) NameOf(code T) (string, bool) {
	for _, e := range t.entries {
		if e.Code == code {
			return e.Name, true
		}
	}
	return "", false
}

// Parse resolves s as a name (case-insensitive) or as a base-10 code.
// Numeric codes are accepted even when the table does not declare them, so
// codes added by a newer peer still parse.
func (t Table[T]) Parse(s string) (T, bool) {
	s = strings.TrimSpace(s)
	if c, ok := t.CodeOf(strings.ToUpper(s)); ok {
		return c, true
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return T(n), true
}

// Entries returns a copy of the table in declaration order.
func (t Table[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup selects one of the three reflect modes. Name wins over Code;
// with neither set the whole table is returned.
type Lookup[T ~int32] struct {
	Name *string
	Code *T
}

// ByName and ByCode are shorthands for building a Lookup.
func ByName[T ~int32](name string) Lookup[T] { return Lookup[T]{Name: &name} }
func ByCode[T ~int32](code T) Lookup[T]      { return Lookup[T]{Code: &code} }

// Reflection is the answer of Reflect. For a name or code lookup Found tells
// whether it resolved; for the table mode All holds every entry.
type Reflection[T ~int32] struct {
	Name  string
	Code  T
	Found bool
	All   []Entry[T]
}

func (t Table[T]) Reflect(l Lookup[T]) Reflection[T] {
	switch {
	case l.Name != nil:
		c, ok := t.CodeOf(*l.Name)
		if !ok {
			return Reflection[T]{}
		}
		return Reflection[T]{Name: *l.Name, Code: c, Found: true}
	case l.Code != nil:
		n, ok := t.NameOf(*l.Code)
		if !ok {
			return Reflection[T]{}
		}
		return Reflection[T]{Name: n, Code: *l.Code, Found: true}
	default:
		return Reflection[T]{Found: true, All: t.Entries()}
	}
}

// String renders code with the table's name, or the numeric code when unknown.
func (t Table[T]) String(code T) string {
	if n, ok := t.NameOf(code); ok {
		return n
	}
	return t.name + "(" + strconv.FormatInt(int64(code), 10) + ")"
}

// Reflector is a Table with its code type erased, for tooling that handles
// many tables at once.
type Reflector interface {
	Name() string
	Len() int
	CodeOfName(name string) (int32, bool)
	NameOfCode(code int32) (string, bool)
	Pairs() []Entry[int32]
}

func (t Table[T]) CodeOfName(name string) (int32, bool) {
	c, ok := t.CodeOf(name)
	return int32(c), ok
}

func (t Table[T]) NameOfCode(code int32) (string, bool) { return t.NameOf(T(code)) }

func (t Table[T]) Pairs() []Entry[int32] {
	out := make([]Entry[int32], len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry[int32]{Name: e.Name, Code: int32(e.Code)}
	}
	return out
}
