package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Record records the record type name under the key "record".
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records a comma-separated list of field names under the key "fields".
func Fields(names ...string) slog.Attr {
	return slog.String("fields", strings.Join(names, ","))
}
