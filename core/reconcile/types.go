package reconcile

// FieldChange records one field whose normalized value differs between the
// paired records. OldValue holds the remote side (what the SIS currently
// stores), NewValue the local side (what the latest export says). Either may
// be null when the field is absent on that side.
type FieldChange struct {
	// Field is the logical field name from the rule table, e.g. "first_name".
	Field string `json:"field"`

	// OldValue is the normalized remote value.
	OldValue *string `json:"old_value"`

	// NewValue is the normalized local value.
	NewValue *string `json:"new_value"`
}

// ModifiedPair couples a matched local/remote record pair with its non-empty
// change list.
type ModifiedPair[L, R any] struct {
	// Local is the CSV-derived record.
	Local L `json:"local"`

	// Remote is the SIS-derived record.
	Remote R `json:"remote"`

	// Changes lists the differing fields in rule-table order.
	Changes []FieldChange `json:"changes"`
}

// Result partitions one entity type's records into the four classification
// buckets. Every input record with a computable key lands in exactly one
// bucket; records without a key are counted under the skip diagnostics and
// appear nowhere else.
type Result[L, R any] struct {
	// Added holds local records with no remote counterpart.
	Added []L `json:"added"`

	// Modified holds matched pairs with at least one field change.
	Modified []ModifiedPair[L, R] `json:"modified"`

	// Removed holds remote records with no local counterpart.
	Removed []R `json:"removed"`

	// Unchanged holds local records whose remote counterpart matches on
	// every compared field.
	Unchanged []L `json:"unchanged"`

	// TotalLocal and TotalRemote are the input collection sizes, including
	// records that were skipped for lack of a key.
	TotalLocal  int `json:"total_local"`
	TotalRemote int `json:"total_remote"`

	// SkippedLocal and SkippedRemote count records without a computable key.
	SkippedLocal  int `json:"skipped_local,omitempty"`
	SkippedRemote int `json:"skipped_remote,omitempty"`

	// CollisionsLocal and CollisionsRemote count duplicate-key records that
	// were shadowed by a later record on the same side.
	CollisionsLocal  int `json:"collisions_local,omitempty"`
	CollisionsRemote int `json:"collisions_remote,omitempty"`
}

// Summary gives the aggregate counts for one entity type. Every count is
// derived from the four buckets (and the recorded input sizes); there is no
// independent bookkeeping that could drift from the lists.
type Summary struct {
	// TotalLocal is the number of local input records.
	TotalLocal int `json:"total_local"`

	// TotalRemote is the number of remote input records.
	TotalRemote int `json:"total_remote"`

	// New counts records that would be created remotely.
	New int `json:"new"`

	// Updated counts matched records with field changes.
	Updated int `json:"updated"`

	// Unchanged counts matched records without field changes.
	Unchanged int `json:"unchanged"`

	// Removed counts remote records absent from the export.
	Removed int `json:"removed"`

	// MatchField names the key strategy used, e.g. "student_number".
	MatchField string `json:"match_field,omitempty"`
}

// Summarize derives the Summary by measuring the four buckets.
func (r Result[L, R]) Summarize(matchField string) Summary {
	return Summary{
		TotalLocal:  r.TotalLocal,
		TotalRemote: r.TotalRemote,
		New:         len(r.Added),
		Updated:     len(r.Modified),
		Unchanged:   len(r.Unchanged),
		Removed:     len(r.Removed),
		MatchField:  matchField,
	}
}

// HasChanges reports whether any bucket besides Unchanged is non-empty.
func (r Result[L, R]) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Modified) > 0 || len(r.Removed) > 0
}
