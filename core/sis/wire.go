package sis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"roster-sync/core/normalize"
	"roster-sync/core/utils"
)

// Flag is a boolean field as the SIS encodes it, which varies by entity and
// release: true/false, 0/1, "0"/"1", "true"/"false", "Y"/"N" or null all
// appear in the wild. Decoding normalizes every form to a plain bool so the
// differ compares booleans, never encodings.
type Flag bool

// UnmarshalJSON accepts any of the SIS boolean encodings.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case float64:
		*f = v == 1
	case string:
		*f = Flag(utils.ToBool(v))
	default:
		return fmt.Errorf("cannot decode %T as flag", raw)
	}
	return nil
}

// MarshalJSON writes the canonical boolean form.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool returns the plain boolean value.
func (f Flag) Bool() bool {
	return bool(f)
}

// Ident is an identifier field the SIS encodes inconsistently: some queries
// return numbers, others strings. Either form decodes to a trimmed string;
// numbers keep their plain decimal form.
type Ident string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *Ident) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*id = ""
	case string:
		*id = Ident(strings.TrimSpace(v))
	case float64:
		*id = Ident(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("cannot decode %T as identifier", raw)
	}
	return nil
}

// MarshalJSON writes the identifier as a string.
func (id Ident) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// String returns the identifier text.
func (id Ident) String() string {
	return string(id)
}

// dateLayouts are the forms SIS date fields arrive in. Time-of-day, when
// present, is discarded downstream by normalization.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// Date is a date-valued field as the SIS encodes it. Null and empty decode
// to the zero value, which normalization treats as absent.
type Date struct {
	time.Time
}

// UnmarshalJSON accepts any of the known date layouts, null, or empty.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("cannot decode %s as date", string(b))
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.Time = time.Time{}
		return nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse date %q", s)
}

// MarshalJSON writes YYYY-MM-DD, or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(normalize.DateLayout))
}
