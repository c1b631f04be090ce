package record

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

// Arg is a named value supplied to New. The order of Args is significant:
// it drives both the rendering order and which failure is reported first.
type Arg struct {
	Name  string
	Value any
}

// With pairs a field name with its value.
func With(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Record is a validated, immutable instance of a record type.
type Record struct {
	schema *Schema
	names  []string
	values map[string]any
	str    string
}

// New validates args against s and returns the sealed record.
//
// The supplied names must match the schema's field set exactly. Rogue names
// are reported before missing ones. Values are then checked in supplied
// order, kind first and precondition second, and the first failure aborts
// construction.
func New(s *Schema, args ...Arg) (*Record, error) {
	if s == nil {
		return nil, schemaError("", "nil schema")
	}

	log := s.logger
	if log == nil {
		log = slog.Default()
	}

	r, err := construct(s, args)
	if err != nil {
		attrs := []slog.Attr{logger.Record(s.name), logger.Error(err)}
		if rerr, ok := AsError(err); ok && len(rerr.Fields) > 0 {
			attrs = append(attrs, logger.Field(rerr.Fields[0]))
		}
		log.LogAttrs(context.Background(), slog.LevelDebug, "record rejected", attrs...)
		return nil, err
	}
	log.LogAttrs(context.Background(), slog.LevelDebug, "record constructed",
		logger.Record(s.name),
		logger.Fields(r.names...),
	)
	return r, nil
}

// MustNew works like New but panics if construction fails.
func MustNew(s *Schema, args ...Arg) *Record {
	r, err := New(s, args...)
	if err != nil {
		panic(err)
	}
	return r
}

func construct(s *Schema, args []Arg) (*Record, error) {
	supplied := make(map[string]struct{}, len(args))
	var rogue []string
	for _, a := range args {
		_, dup := supplied[a.Name]
		if (dup || !s.Has(a.Name)) && !slices.Contains(rogue, a.Name) {
			rogue = append(rogue, a.Name)
		}
		supplied[a.Name] = struct{}{}
	}
	if len(rogue) > 0 {
		return nil, &Error{Err: ErrRogueFields, Record: s.name, Fields: rogue}
	}

	var missing []string
	for _, f := range s.fields {
		if _, ok := supplied[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &Error{Err: ErrMissingFields, Record: s.name, Fields: missing}
	}

	r := &Record{
		schema: s.identity(),
		names:  make([]string, 0, len(args)),
		values: make(map[string]any, len(args)),
	}
	for _, a := range args {
		f, _ := s.Lookup(a.Name)
		if !f.Kind.Accepts(a.Value) {
			return nil, &Error{
				Err:      ErrTypeMismatch,
				Record:   s.name,
				Fields:   []string{a.Name},
				Value:    a.Value,
				Expected: f.Kind.Name(),
			}
		}
		if !f.Descriptor.satisfied(a.Value) {
			return nil, &Error{Err: ErrInvalidValue, Record: s.name, Fields: []string{a.Name}}
		}
		r.names = append(r.names, a.Name)
		r.values[a.Name] = a.Value
	}

	r.str = render(s, r.names, r.values)
	return r, nil
}

// Schema returns the record type the record was constructed from.
func (r *Record) Schema() *Schema { return r.schema }

// Type returns the record type name.
func (r *Record) Type() string { return r.schema.name }

// Get returns the value stored for name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in the order they were supplied.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// Set always fails: a constructed record is read-only.
func (r *Record) Set(name string, _ any) error {
	return &Error{Err: ErrReadOnly, Record: r.schema.name, Fields: []string{name}}
}

// String returns the rendering cached at construction.
func (r *Record) String() string { return r.str }

// Value returns the value stored for name as a T. The second result is
// false when the field does not exist or holds a value of another type.
func Value[T any](r *Record, name string) (T, bool) {
	v, ok := r.values[name].(T)
	return v, ok
}
