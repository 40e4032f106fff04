package roster

import "roster-sync/core/normalize"

// DataSet is the normalized output of one CSV import: every entity collection
// in source order. It is produced once per import and consumed once per
// reconciliation pass.
type DataSet struct {
	Students      []Student                    `json:"students"`
	Contacts      []Contact                    `json:"contacts"`
	Emails        []EmailAddress               `json:"emails"`
	Phones        []PhoneNumber                `json:"phones"`
	Addresses     []Address                    `json:"addresses"`
	Relationships []StudentContactRelationship `json:"relationships"`
}

// The grouping maps key by the case-folded ContactIdentifier so a contact
// row and its owned rows pair up even when documents disagree on casing.
// Source order is preserved within each group.

// EmailsByContact groups email records by contact.
func (d *DataSet) EmailsByContact() map[string][]EmailAddress {
	out := make(map[string][]EmailAddress)
	for _, e := range d.Emails {
		k := normalize.Fold(e.ContactIdentifier)
		out[k] = append(out[k], e)
	}
	return out
}

// PhonesByContact groups phone records by contact.
func (d *DataSet) PhonesByContact() map[string][]PhoneNumber {
	out := make(map[string][]PhoneNumber)
	for _, p := range d.Phones {
		k := normalize.Fold(p.ContactIdentifier)
		out[k] = append(out[k], p)
	}
	return out
}

// AddressesByContact groups address records by contact.
func (d *DataSet) AddressesByContact() map[string][]Address {
	out := make(map[string][]Address)
	for _, a := range d.Addresses {
		k := normalize.Fold(a.ContactIdentifier)
		out[k] = append(out[k], a)
	}
	return out
}

// RelationshipsByContact groups relationship records by contact.
func (d *DataSet) RelationshipsByContact() map[string][]StudentContactRelationship {
	out := make(map[string][]StudentContactRelationship)
	for _, r := range d.Relationships {
		k := normalize.Fold(r.ContactIdentifier)
		out[k] = append(out[k], r)
	}
	return out
}

// Counts returns the collection sizes keyed by entity name, for logging and
// import diagnostics.
func (d *DataSet) Counts() map[string]int {
	return map[string]int{
		"students":      len(d.Students),
		"contacts":      len(d.Contacts),
		"emails":        len(d.Emails),
		"phones":        len(d.Phones),
		"addresses":     len(d.Addresses),
		"relationships": len(d.Relationships),
	}
}
