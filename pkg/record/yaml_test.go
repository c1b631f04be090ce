package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	t.Run("keeps document order", func(t *testing.T) {
		doc := []byte("age: 34\nname: JAMES\nincome: 24000.0\n")

		r, err := record.DecodeYAML(person, doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "name", "income"}, r.Names())

		age, ok := record.Value[int](r, "age")
		require.True(t, ok)
		assert.Equal(t, 34, age)
	})

	t.Run("validates like New", func(t *testing.T) {
		_, err := record.DecodeYAML(person, []byte("name: JAMES\nage: 160\nincome: 1.0\n"))
		assert.ErrorIs(t, err, record.ErrInvalidValue)

		_, err = record.DecodeYAML(person, []byte("name: JAMES\nage: 34\nincome: 24000\n"))
		assert.ErrorIs(t, err, record.ErrTypeMismatch)

		_, err = record.DecodeYAML(person, []byte("name: JAMES\nage: 34\nincome: 1.0\nemail: x\n"))
		assert.ErrorIs(t, err, record.ErrRogueFields)
	})

	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"sequence", "- a\n- b\n"},
		{"scalar", "hello\n"},
		{"malformed", "name: [unclosed\n"},
		{"complex key", "? [a, b]\n: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := record.DecodeYAML(person, []byte(tt.doc))
			assert.ErrorIs(t, err, record.ErrInvalidInput)
		})
	}
}

func TestArgsFromYAML(t *testing.T) {
	t.Parallel()

	args, err := record.ArgsFromYAML([]byte("a: text\nb: 2\nc: 2.5\nd: true\n"))
	require.NoError(t, err)
	assert.Equal(t, []record.Arg{
		record.With("a", "text"),
		record.With("b", 2),
		record.With("c", 2.5),
		record.With("d", true),
	}, args)
}
