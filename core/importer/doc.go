// Package importer turns a district CSV drop into a normalized roster data
// set. A drop is a set of CSV documents (students, contacts, emails, phones,
// addresses, relationships) whose file names and header spellings vary by
// district. A Template names the documents and maps their headers onto the
// canonical columns the parsers read.
//
// Parsing is deliberately forgiving: the text encoding is detected per
// document, ragged rows read as empty cells, and malformed values degrade to
// zero values with a recorded Issue instead of failing the drop. Only a
// document the template names and the source cannot supply is fatal.
package importer
