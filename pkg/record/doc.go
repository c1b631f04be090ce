// Package record provides validated, immutable records built from explicit
// schemas.
//
// A record type is declared once as a Schema: an ordered set of fields, each
// binding a name to a Kind (the expected type tag) and a Descriptor (a
// human-readable label plus an optional Precondition). A Schema may extend
// another one; the child inherits every ancestor field and may redeclare a
// name to replace its kind and descriptor. Inheritance is resolved when the
// type is defined, never during construction.
//
// # Construction
//
// New takes the schema and an ordered list of named values:
//
//	var Person = record.MustDefine("Person",
//	    record.Field("name", record.String, record.Descriptor{Label: "The name"}),
//	    record.Field("age", record.Int, record.Descriptor{
//	        Label:        "The person's age",
//	        Precondition: record.Between(0, 150),
//	    }),
//	)
//
//	p, err := record.New(Person,
//	    record.With("name", "JAMES"),
//	    record.With("age", 34),
//	)
//
// Construction is all-or-nothing. It fails with
//
//   - ErrRogueFields when a name is not declared (or is supplied twice),
//   - ErrMissingFields when a declared field has no value,
//   - ErrTypeMismatch when a value is not accepted by the field's Kind,
//   - ErrInvalidValue when a value fails the field's Precondition.
//
// Rogue names are reported before missing ones, and values are checked in
// the order they were supplied; only the first failure is returned.
//
// # Immutability
//
// A Record exposes read accessors only. Set exists to make the contract
// explicit and always returns ErrReadOnly.
//
// # Rendering
//
// String returns a multi-line rendering computed once during construction:
//
//	Person(
//	  # The name
//	  name='JAMES'
//
//	  # The person's age
//	  age=34
//	)
//
// Each descriptor contributes one comment line per metadata entry (Label,
// then Help when set). Fields appear in supplied order.
//
// # Error Handling
//
// Construction failures are *Error values. Use errors.Is with the sentinels
// above, or AsError to inspect the record type, field names and the
// translation key/values for localized messages.
package record
