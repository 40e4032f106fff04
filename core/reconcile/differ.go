package reconcile

import (
	"roster-sync/core/normalize"
)

// Rule describes one compared field: a logical name plus accessors for the
// local and remote shapes. Accessors return raw values; Diff normalizes both
// sides before comparing. Only fields with a rule are ever compared.
type Rule[L, R any] struct {
	// Field is the logical name reported in a FieldChange.
	Field string

	// Local extracts the field from the local record.
	Local func(L) any

	// Remote extracts the field from the remote record.
	Remote func(R) any
}

// Diff runs a rule table over a matched pair and returns one FieldChange per
// rule whose normalized values differ, in table order.
func Diff[L, R any](local L, remote R, rules []Rule[L, R]) []FieldChange {
	var changes []FieldChange
	for _, rule := range rules {
		newVal := normalize.Canonical(rule.Local(local))
		oldVal := normalize.Canonical(rule.Remote(remote))
		if !normalize.Equal(oldVal, newVal) {
			changes = append(changes, FieldChange{
				Field:    rule.Field,
				OldValue: oldVal,
				NewValue: newVal,
			})
		}
	}
	return changes
}

// Differ adapts a rule table into the Diff function Options expects.
func Differ[L, R any](rules []Rule[L, R]) func(L, R) []FieldChange {
	return func(local L, remote R) []FieldChange {
		return Diff(local, remote, rules)
	}
}
