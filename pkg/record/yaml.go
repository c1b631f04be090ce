package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML constructs a record of type s from a YAML mapping. Keys are
// supplied in document order and scalars decode to their natural Go types
// (int, float64, string, bool) before the usual validation runs.
func DecodeYAML(s *Schema, data []byte) (*Record, error) {
	args, err := ArgsFromYAML(data)
	if err != nil {
		return nil, err
	}
	return New(s, args...)
}

// ArgsFromYAML turns a YAML mapping into ordered Args.
func ArgsFromYAML(data []byte) ([]Arg, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidInput, m.Line)
	}

	args := make([]Arg, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrInvalidInput, key.Line)
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrInvalidInput, key.Value, err)
		}
		args = append(args, With(key.Value, v))
	}
	return args, nil
}
