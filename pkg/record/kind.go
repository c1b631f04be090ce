package record

import "reflect"

// Kind is the expected type tag of a field. It is checked against every
// supplied value before the field's precondition runs.
type Kind interface {
	// Name is used in type mismatch errors.
	Name() string
	// Accepts reports whether v is an instance of the kind.
	Accepts(v any) bool
}

// Built-in kinds.
var (
	String = TypeOf[string]()
	Int    = TypeOf[int]()
	Int64  = TypeOf[int64]()
	Float  = TypeOf[float64]()
	Bool   = TypeOf[bool]()
)

// Any accepts every value, nil included.
var Any Kind = anyKind{}

// TypeOf returns a Kind accepting values whose dynamic type is assignable
// to T. For an interface T every implementation is accepted.
func TypeOf[T any]() Kind {
	return typeKind{typ: reflect.TypeFor[T]()}
}

// KindFunc returns a Kind backed by an arbitrary check.
func KindFunc(name string, accepts func(v any) bool) Kind {
	return funcKind{name: name, accepts: accepts}
}

type typeKind struct {
	typ reflect.Type
}

func (k typeKind) Name() string { return k.typ.String() }

func (k typeKind) Accepts(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(k.typ)
}

type anyKind struct{}

func (anyKind) Name() string     { return "any" }
func (anyKind) Accepts(any) bool { return true }

type funcKind struct {
	name    string
	accepts func(v any) bool
}

func (k funcKind) Name() string { return k.name }

func (k funcKind) Accepts(v any) bool {
	return k.accepts != nil && k.accepts(v)
}
