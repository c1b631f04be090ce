package record

import (
	"errors"
	"fmt"
	"strings"
)

// Construction and schema errors. Construction failures are reported as
// *Error values that unwrap to exactly one of them.
var (
	// ErrRogueFields is returned when values are supplied for names the schema does not declare.
	ErrRogueFields = errors.New("rogue fields")

	// ErrMissingFields is returned when a declared field has no supplied value.
	ErrMissingFields = errors.New("missing fields")

	// ErrTypeMismatch is returned when a value does not match the declared kind of its field.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue is returned when a value fails its field's precondition.
	ErrInvalidValue = errors.New("invalid value")

	// ErrReadOnly is returned by every write attempted on a constructed record.
	ErrReadOnly = errors.New("attribute is read-only")

	// ErrInvalidSchema is returned when a record type definition is malformed.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidInput is returned when encoded input cannot be turned into named values.
	ErrInvalidInput = errors.New("invalid input")
)

// Error describes a single failure together with the record type and field
// names involved.
type Error struct {
	// Err is one of the package sentinels.
	Err error
	// Record is the name of the record type.
	Record string
	// Fields lists the offending field or attribute names.
	Fields []string
	// Value is the rejected value for type mismatches.
	Value any
	// Expected is the expected kind name for type mismatches.
	Expected string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Record != "" {
		b.WriteString(e.Record)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())

	switch {
	case errors.Is(e.Err, ErrTypeMismatch):
		fmt.Fprintf(&b, ": field %s got %s, expected %s", e.field(), repr(e.Value), e.Expected)
	case len(e.Fields) > 0:
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Fields, ", "))
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TranslationKey returns an i18n key identifying the failure kind.
func (e *Error) TranslationKey() string {
	switch e.Err {
	case ErrRogueFields:
		return "validation.rogue_fields"
	case ErrMissingFields:
		return "validation.missing_fields"
	case ErrTypeMismatch:
		return "validation.type_mismatch"
	case ErrInvalidValue:
		return "validation.invalid_value"
	case ErrReadOnly:
		return "validation.read_only"
	default:
		return "validation.invalid_input"
	}
}

// TranslationValues returns the placeholders used by TranslationKey messages.
func (e *Error) TranslationValues() map[string]any {
	values := map[string]any{
		"record": e.Record,
		"fields": strings.Join(e.Fields, ", "),
	}
	if e.Err == ErrTypeMismatch {
		values["field"] = e.field()
		values["value"] = repr(e.Value)
		values["expected"] = e.Expected
	}
	return values
}

func (e *Error) field() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}
