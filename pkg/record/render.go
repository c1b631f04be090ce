package record

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

const indent = "  "

func render(s *Schema, names []string, values map[string]any) string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteString("(\n")
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		f, _ := s.Lookup(name)
		for _, line := range f.Descriptor.comments() {
			b.WriteString(indent)
			b.WriteString("# ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(repr(values[name]))
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

// repr formats a field value for rendering and error messages.
func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return quote(x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case fmt.Stringer:
		return x.String()
	}

	// Named string and float types render like their underlying kind.
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		return quote(rv.String())
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// formatFloat always keeps a decimal point so floats stay distinguishable
// from integers, e.g. 24000.0. Exponent form is used outside [1e-4, 1e16).
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
