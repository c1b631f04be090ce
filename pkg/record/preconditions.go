package record

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Numeric is the constraint of the range preconditions.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Check adapts a typed predicate into a Precondition. Values that are not
// a T never satisfy it.
func Check[T any](fn func(v T) bool) Precondition {
	return func(v any) bool {
		t, ok := v.(T)
		return ok && fn(t)
	}
}

// Between accepts numbers in the closed range [min, max].
func Between[T Numeric](min, max T) Precondition {
	return Check(func(v T) bool {
		return v >= min && v <= max
	})
}

// Min accepts numbers greater than or equal to min.
func Min[T Numeric](min T) Precondition {
	return Check(func(v T) bool {
		return v >= min
	})
}

// Max accepts numbers less than or equal to max.
func Max[T Numeric](max T) Precondition {
	return Check(func(v T) bool {
		return v <= max
	})
}

// NotBlank accepts strings that are not empty after trimming whitespace.
func NotBlank() Precondition {
	return Check(func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLen accepts strings of at least min characters.
func MinLen(min int) Precondition {
	return Check(func(v string) bool {
		return utf8.RuneCountInString(v) >= min
	})
}

// MaxLen accepts strings of at most max characters.
func MaxLen(max int) Precondition {
	return Check(func(v string) bool {
		return utf8.RuneCountInString(v) <= max
	})
}

// OneOf accepts values equal to one of the allowed ones.
func OneOf[T comparable](allowed ...T) Precondition {
	return Check(func(v T) bool {
		return slices.Contains(allowed, v)
	})
}

// Match accepts strings matching re.
func Match(re *regexp.Regexp) Precondition {
	return Check(func(v string) bool {
		return re.MatchString(v)
	})
}

// All accepts values satisfying every given precondition. Nil entries are skipped.
func All(preconditions ...Precondition) Precondition {
	return func(v any) bool {
		for _, p := range preconditions {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}
