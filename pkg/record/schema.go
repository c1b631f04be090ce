package record

import (
	"fmt"
	"log/slog"
	"slices"
)

// Schema is a resolved record type: its name and the full set of fields it
// declares or inherits. A Schema is immutable once defined and safe for
// concurrent use.
type Schema struct {
	name   string
	origin *Schema
	parent *Schema
	fields []FieldSpec
	index  map[string]int
	logger *slog.Logger
}

// Define creates a record type with the given fields.
func Define(name string, fields ...FieldSpec) (*Schema, error) {
	return resolve(name, nil, fields)
}

// MustDefine works like Define but panics on a malformed definition.
// Intended for package-level record type declarations.
func MustDefine(name string, fields ...FieldSpec) *Schema {
	s, err := Define(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend creates a record type inheriting every field of s. A field
// redeclared by the child replaces the inherited kind and descriptor but
// keeps its position.
func (s *Schema) Extend(name string, fields ...FieldSpec) (*Schema, error) {
	if s == nil {
		return nil, schemaError(name, "nil parent")
	}
	return resolve(name, s, fields)
}

// MustExtend works like Extend but panics on a malformed definition.
func (s *Schema) MustExtend(name string, fields ...FieldSpec) *Schema {
	child, err := s.Extend(name, fields...)
	if err != nil {
		panic(err)
	}
	return child
}

// WithLogger returns a view of the schema that reports construction
// outcomes to l at debug level. The view is the same record type: Is,
// Record.Schema and Extend resolve through to s.
func (s *Schema) WithLogger(l *slog.Logger) *Schema {
	c := *s
	c.origin = s.identity()
	if l != nil {
		c.logger = l
	}
	return &c
}

// identity returns the schema a logger view was derived from.
func (s *Schema) identity() *Schema {
	if s.origin != nil {
		return s.origin
	}
	return s
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Parent returns the extended record type, or nil.
func (s *Schema) Parent() *Schema { return s.parent }

// Fields returns the resolved field names, inherited fields first.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the resolved declaration of a field.
func (s *Schema) Lookup(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Has reports whether the record type declares or inherits name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of resolved fields.
func (s *Schema) Len() int { return len(s.fields) }

// Is reports whether s is other or extends it.
func (s *Schema) Is(other *Schema) bool {
	if other == nil {
		return false
	}
	target := other.identity()
	for cur := s.identity(); cur != nil; cur = cur.parent {
		if cur == target {
			return true
		}
	}
	return false
}

func resolve(name string, parent *Schema, own []FieldSpec) (*Schema, error) {
	if name == "" {
		return nil, schemaError(name, "empty record type name")
	}

	s := &Schema{
		name:   name,
		index:  make(map[string]int, len(own)),
		logger: slog.Default(),
	}
	if parent != nil {
		s.parent = parent.identity()
		s.fields = slices.Clone(parent.fields)
		for k, v := range parent.index {
			s.index[k] = v
		}
		s.logger = parent.logger
	}

	declared := make(map[string]struct{}, len(own))
	for _, f := range own {
		if f.Name == "" {
			return nil, schemaError(name, "empty field name")
		}
		if f.Kind == nil {
			return nil, schemaError(name, fmt.Sprintf("field %s has no kind", f.Name))
		}
		if _, dup := declared[f.Name]; dup {
			return nil, schemaError(name, fmt.Sprintf("field %s declared twice", f.Name))
		}
		declared[f.Name] = struct{}{}

		if i, ok := s.index[f.Name]; ok {
			s.fields[i] = f
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

func schemaError(record, reason string) error {
	if record == "" {
		return fmt.Errorf("%w: %s", ErrInvalidSchema, reason)
	}
	return fmt.Errorf("%s: %w: %s", record, ErrInvalidSchema, reason)
}
