// Package runs orchestrates reconciliation runs: import the CSV drop,
// reconcile students and contacts against the SIS, assemble the change
// report, and keep the run history.
//
// A run is triggered with POST /runs. Concurrent triggers coalesce into one
// run that every caller receives; the engine is read-only against the SIS so
// re-running is always safe, but one nightly drop never needs two fetch
// passes. The full report of the most recent run stays in memory for
// GET /runs/latest, every report is archived to object storage when
// archiving is enabled, and a summary row per run is written to the
// database when one is configured. Both the database and the archive are
// optional; without them a run still produces its report.
package runs
