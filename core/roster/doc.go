// Package roster defines the normalized entity model shared by the CSV
// importer and the reconciliation engine: students, contacts, and the
// contact-owned sub-records (email addresses, phone numbers, mailing
// addresses, student relationships), aggregated into a DataSet.
//
// Sub-records reference their contact by ContactIdentifier rather than being
// embedded, so each collection can be enumerated and reconciled on its own.
// All records are built once during import and treated as read-only
// afterwards; a reconciliation pass never mutates them.
package roster
