package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the canonical form for date values. Source data resolution is
// date-only, so time-of-day is always discarded.
const DateLayout = "2006-01-02"

// Canonical converts a scalar value into its canonical string form, or nil
// when the value is absent. Absent covers nil, nil pointers, empty and
// whitespace-only strings, and zero time values, so "missing" and "empty"
// compare equal.
//
// Strings are trimmed with case preserved. Numeric types become their decimal
// representation, booleans become the literals "true"/"false", and time
// values are formatted as YYYY-MM-DD. Unrecognized types fall back to
// fmt.Sprint plus trim. Canonical never fails.
func Canonical(v any) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case *string:
		if val == nil {
			return nil
		}
		return Canonical(*val)
	case string:
		return trimmed(val)
	case bool:
		return ptr(strconv.FormatBool(val))
	case *bool:
		if val == nil {
			return nil
		}
		return ptr(strconv.FormatBool(*val))
	case int:
		return ptr(strconv.Itoa(val))
	case int8:
		return ptr(strconv.FormatInt(int64(val), 10))
	case int16:
		return ptr(strconv.FormatInt(int64(val), 10))
	case int32:
		return ptr(strconv.FormatInt(int64(val), 10))
	case int64:
		return ptr(strconv.FormatInt(val, 10))
	case uint:
		return ptr(strconv.FormatUint(uint64(val), 10))
	case uint8:
		return ptr(strconv.FormatUint(uint64(val), 10))
	case uint16:
		return ptr(strconv.FormatUint(uint64(val), 10))
	case uint32:
		return ptr(strconv.FormatUint(uint64(val), 10))
	case uint64:
		return ptr(strconv.FormatUint(val, 10))
	case float32:
		return ptr(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		return ptr(strconv.FormatFloat(val, 'f', -1, 64))
	case time.Time:
		return canonicalTime(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return canonicalTime(*val)
	case *int:
		if val == nil {
			return nil
		}
		return ptr(strconv.Itoa(*val))
	default:
		return trimmed(fmt.Sprint(val))
	}
}

// Equal reports whether two canonical values are the same, treating nil as
// equal only to nil.
func Equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Fold trims and lower-cases a string for case-insensitive match keys
// (email addresses, address components).
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Digits strips every non-digit rune. Phone numbers match on digits alone, so
// "(555) 123-4567" and "555-123-4567" reduce to the same key.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func canonicalTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	return ptr(t.Format(DateLayout))
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func ptr(s string) *string {
	return &s
}
