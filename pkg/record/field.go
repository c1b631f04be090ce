package record

// Precondition reports whether a value is acceptable for a field. It only
// runs after the value has passed the field's Kind check.
type Precondition func(v any) bool

// Descriptor is the per-field metadata of a record type. It is schema, not
// instance state: one Descriptor is shared by every record of the type.
type Descriptor struct {
	// Label is the human-readable name rendered above the field's value.
	Label string
	// Help is optional extra text rendered below the label.
	Help string
	// Precondition is optional; nil means every value of the right kind is accepted.
	Precondition Precondition
}

// comments returns the non-precondition metadata in declaration order.
func (d Descriptor) comments() []string {
	lines := []string{d.Label}
	if d.Help != "" {
		lines = append(lines, d.Help)
	}
	return lines
}

func (d Descriptor) satisfied(v any) bool {
	return d.Precondition == nil || d.Precondition(v)
}

// FieldSpec binds a field name to its kind and descriptor.
type FieldSpec struct {
	Name       string
	Kind       Kind
	Descriptor Descriptor
}

// Field declares a field for Define or Extend.
func Field(name string, kind Kind, d Descriptor) FieldSpec {
	return FieldSpec{Name: name, Kind: kind, Descriptor: d}
}
