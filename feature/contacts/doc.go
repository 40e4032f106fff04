// Package contacts reconciles parent/guardian contacts and their owned
// collections (emails, phones, addresses, student relationships) against the
// SIS.
//
// A contact matches its remote person by ContactIdentifier. For every matched
// contact the service runs four nested reconciliations over the owned
// collections, so the report says not just that a contact changed but which
// email was added or which relationship flag flipped. A contact counts as
// unchanged only when its own fields and all four collections are unchanged.
//
// Like the rest of the engine this is report-only: nothing is written back
// to the SIS. The feature exposes GET /contacts/count as a connectivity
// probe.
package contacts
