package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt coerces a scalar to int. Roster cells arrive as strings, decoded
// JSON numbers as float64 and database scans as int64 or []byte; anything
// unparseable reads as zero.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}

// ToBool reads the boolean spellings district exports and SIS payloads use:
// true/false, 1/0, "1", "true", "Y", "yes" in any casing. Anything else
// reads as false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, float64:
		return ToInt(v) == 1
	case string:
		return boolString(v)
	case []byte:
		return boolString(string(v))
	default:
		return false
	}
}

func boolString(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true") ||
		strings.EqualFold(s, "y") || strings.EqualFold(s, "yes")
}
