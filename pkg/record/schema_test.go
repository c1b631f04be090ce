package record_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

func TestDefine(t *testing.T) {
	t.Parallel()

	t.Run("resolves fields in declaration order", func(t *testing.T) {
		s, err := record.Define("Point",
			record.Field("x", record.Int, record.Descriptor{Label: "X"}),
			record.Field("y", record.Int, record.Descriptor{Label: "Y"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Point", s.Name())
		assert.Equal(t, []string{"x", "y"}, s.Fields())
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("x"))
		assert.False(t, s.Has("z"))
		assert.Nil(t, s.Parent())

		f, ok := s.Lookup("y")
		require.True(t, ok)
		assert.Equal(t, "Y", f.Descriptor.Label)
		assert.Equal(t, "int", f.Kind.Name())
	})

	tests := []struct {
		name   string
		record string
		fields []record.FieldSpec
	}{
		{"empty type name", "", nil},
		{"empty field name", "Bad", []record.FieldSpec{record.Field("", record.Int, record.Descriptor{})}},
		{"nil kind", "Bad", []record.FieldSpec{record.Field("x", nil, record.Descriptor{})}},
		{
			"duplicate field", "Bad", []record.FieldSpec{
				record.Field("x", record.Int, record.Descriptor{}),
				record.Field("x", record.String, record.Descriptor{}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := record.Define(tt.record, tt.fields...)
			assert.ErrorIs(t, err, record.ErrInvalidSchema)
		})
	}

	t.Run("must define panics", func(t *testing.T) {
		assert.Panics(t, func() { record.MustDefine("") })
	})
}

func TestExtend(t *testing.T) {
	t.Parallel()

	base := record.MustDefine("Base",
		record.Field("id", record.Int, record.Descriptor{Label: "Identifier"}),
		record.Field("note", record.String, record.Descriptor{Label: "Note"}),
	)

	t.Run("child redeclaration overrides in place", func(t *testing.T) {
		child, err := base.Extend("Child",
			record.Field("extra", record.Bool, record.Descriptor{Label: "Extra"}),
			record.Field("id", record.String, record.Descriptor{Label: "Textual identifier"}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "note", "extra"}, child.Fields())

		f, _ := child.Lookup("id")
		assert.Equal(t, "string", f.Kind.Name())
		assert.Equal(t, "Textual identifier", f.Descriptor.Label)

		_, err = record.New(child,
			record.With("id", "abc"),
			record.With("note", "n"),
			record.With("extra", true),
		)
		assert.NoError(t, err)
	})

	t.Run("parent is unaffected", func(t *testing.T) {
		_ = base.MustExtend("Other", record.Field("id", record.Float, record.Descriptor{}))

		f, _ := base.Lookup("id")
		assert.Equal(t, "int", f.Kind.Name())
		assert.Equal(t, []string{"id", "note"}, base.Fields())
	})

	t.Run("nil parent", func(t *testing.T) {
		var nilSchema *record.Schema
		_, err := nilSchema.Extend("Orphan")
		assert.ErrorIs(t, err, record.ErrInvalidSchema)
	})

	t.Run("schema resolved once", func(t *testing.T) {
		child := base.MustExtend("Stable", record.Field("x", record.Int, record.Descriptor{}))
		for range 3 {
			_, err := record.New(child, record.With("id", 1), record.With("note", ""), record.With("x", 2))
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"id", "note", "x"}, child.Fields())
	})

	t.Run("with logger keeps identity of fields", func(t *testing.T) {
		c := base.WithLogger(nil)
		assert.Equal(t, base.Fields(), c.Fields())
		assert.Equal(t, base.Name(), c.Name())
	})
}

func TestSchema_WithLoggerIdentity(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logged := person.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug)))

	assert.True(t, logged.Is(person))
	assert.True(t, person.Is(logged))
	assert.True(t, logged.WithLogger(nil).Is(person))

	r, err := record.New(logged,
		record.With("name", "JAMES"),
		record.With("age", 34),
		record.With("income", 24000.0),
	)
	require.NoError(t, err)
	assert.Same(t, person, r.Schema())
	assert.Contains(t, buf.String(), "record constructed")

	child := logged.MustExtend("Child", record.Field("extra", record.Bool, record.Descriptor{Label: "Extra"}))
	assert.True(t, child.Is(person))
	assert.Same(t, person, child.Parent())

	buf.Reset()
	_, err = record.New(child, record.With("extra", true))
	require.ErrorIs(t, err, record.ErrMissingFields)
	assert.Contains(t, buf.String(), "record rejected")

	assert.False(t, person.Is(nil))
	assert.False(t, animal.WithLogger(nil).Is(person))
}
