// Package normalize canonicalizes scalar values into comparison-safe strings.
//
// Field values arrive from two very different sources: a CSV export parsed
// into typed Go values, and SIS API responses where the same field may come
// back as a number, a string, or a differently-encoded boolean between
// releases. Comparing raw values produces phantom diffs ("5" vs 5, true vs 1,
// a timestamp vs a date). Every comparison in the reconciliation engine
// therefore goes through Canonical first.
//
// Canonical is idempotent: feeding its output back in yields the same result.
package normalize
