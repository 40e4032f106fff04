package contacts

import (
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
)

// ContactDetail is everything the reconciler found out about one matched
// contact: the contact's own field changes plus the four owned-collection
// results, each scoped to this contact's records on both sides.
type ContactDetail struct {
	Local  roster.Contact `json:"local"`
	Remote RemotePerson   `json:"remote"`

	// Changes lists the contact's own differing fields, empty when only the
	// owned collections changed.
	Changes []reconcile.FieldChange `json:"changes,omitempty"`

	Emails        reconcile.Result[roster.EmailAddress, RemoteEmail]                `json:"emails"`
	Phones        reconcile.Result[roster.PhoneNumber, RemotePhone]                 `json:"phones"`
	Addresses     reconcile.Result[roster.Address, RemoteAddress]                   `json:"addresses"`
	Relationships reconcile.Result[roster.StudentContactRelationship, RemoteRelationship] `json:"relationships"`
}

// HasChanges reports whether anything about the contact differs: its own
// fields or any owned collection.
func (d ContactDetail) HasChanges() bool {
	return len(d.Changes) > 0 ||
		d.Emails.HasChanges() ||
		d.Phones.HasChanges() ||
		d.Addresses.HasChanges() ||
		d.Relationships.HasChanges()
}

// Report is the contact-level reconciliation output. Details holds every
// matched contact with changes, contacts whose own fields changed first and
// then contacts where only an owned collection changed, each group in local
// input order. Unchanged holds matched contacts where nothing differs at any
// level.
type Report struct {
	Added     []roster.Contact `json:"added"`
	Details   []ContactDetail  `json:"details"`
	Removed   []RemotePerson   `json:"removed"`
	Unchanged []roster.Contact `json:"unchanged"`

	TotalLocal  int `json:"total_local"`
	TotalRemote int `json:"total_remote"`

	SkippedLocal  int `json:"skipped_local,omitempty"`
	SkippedRemote int `json:"skipped_remote,omitempty"`

	CollisionsLocal  int `json:"collisions_local,omitempty"`
	CollisionsRemote int `json:"collisions_remote,omitempty"`
}

// Summarize derives the aggregate counts by measuring the lists.
func (r *Report) Summarize() reconcile.Summary {
	return reconcile.Summary{
		TotalLocal:  r.TotalLocal,
		TotalRemote: r.TotalRemote,
		New:         len(r.Added),
		Updated:     len(r.Details),
		Unchanged:   len(r.Unchanged),
		Removed:     len(r.Removed),
		MatchField:  "contact_identifier",
	}
}

// HasChanges reports whether any bucket besides Unchanged is non-empty.
func (r *Report) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Details) > 0 || len(r.Removed) > 0
}
