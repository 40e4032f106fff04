// Package reconcile provides a generic engine for reconciling two keyed
// collections of the same entity: the local side coming from a CSV-derived
// roster snapshot and the remote side fetched from the SIS API.
//
// Every record on each side is reduced to a match key, the two sides are
// indexed, and each record is classified into exactly one of four buckets:
//
//   - Added: present locally, no remote record with the same key
//   - Modified: paired, with at least one normalized field difference
//   - Unchanged: paired, no field differences
//   - Removed: present remotely, no local record with the same key
//
// # Architecture
//
// The engine consists of three parts:
//
//  1. Collate: the classification algorithm, written once and parameterized
//     with key functions and a differ. All six entity types run through the
//     same code path; none of them duplicate the algorithm.
//
//  2. Rules: per-entity allow-lists of field rules. Each rule names a field
//     and provides a local and a remote accessor; both sides pass through
//     normalize.Canonical before comparison, so formatting noise (whitespace,
//     numeric strings, boolean encodings, timestamp precision) never shows up
//     as a change. Fields without a rule are never compared, which keeps
//     volatile remote metadata (internal ids, audit timestamps) silent.
//
//  3. Keys: shared match-key derivations (email, phone, address, numeric)
//     applied identically to the local and remote shapes of an entity.
//
// # Soft failures
//
// A record whose key cannot be computed is skipped with a diagnostic and
// excluded from every bucket. Two records on the same side mapping to the
// same key are a collision: the later record wins and the earlier one is
// logged. Neither situation aborts a run.
//
// # Determinism
//
// Output order follows input order on both sides, never map iteration order,
// so reconciling identical inputs twice produces identical reports.
package reconcile
