package runs

import (
	"time"

	"roster-sync/core/importer"
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
	"roster-sync/feature/contacts"
	"roster-sync/feature/students"
)

// ChangeReport is the complete output of one reconciliation pass across all
// entity types. The Summary block is derived from the result lists at
// assembly time; there is no separate bookkeeping to drift from them.
type ChangeReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Template    string    `json:"template"`

	Students reconcile.Result[roster.Student, students.RemoteStudent] `json:"students"`
	Contacts *contacts.Report                                         `json:"contacts"`

	// Issues carries the soft diagnostics from the CSV import.
	Issues []importer.Issue `json:"issues,omitempty"`

	Summary ReportSummary `json:"summary"`
}

// ReportSummary aggregates the per-entity summaries.
type ReportSummary struct {
	Students reconcile.Summary `json:"students"`
	Contacts reconcile.Summary `json:"contacts"`
}

// AssembleReport folds the per-entity outputs into one report. The student
// match field is recorded so a reader of an archived report knows which key
// strategy produced it.
func AssembleReport(runID, template, matchField string,
	st reconcile.Result[roster.Student, students.RemoteStudent],
	ct *contacts.Report,
	issues []importer.Issue,
) *ChangeReport {
	return &ChangeReport{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Template:    template,
		Students:    st,
		Contacts:    ct,
		Issues:      issues,
		Summary: ReportSummary{
			Students: st.Summarize(matchField),
			Contacts: ct.Summarize(),
		},
	}
}

// HasChanges reports whether any entity type has a non-empty change bucket.
func (r *ChangeReport) HasChanges() bool {
	return r.Students.HasChanges() || r.Contacts.HasChanges()
}

// Record flattens the report into its run-history row.
func (r *ChangeReport) Record(started, finished time.Time) *RunRecord {
	return &RunRecord{
		RunID:      r.RunID,
		StartedAt:  started,
		FinishedAt: finished,
		Status:     StatusSucceeded,
		Template:   r.Template,
		MatchField: r.Summary.Students.MatchField,

		StudentsNew:       r.Summary.Students.New,
		StudentsUpdated:   r.Summary.Students.Updated,
		StudentsUnchanged: r.Summary.Students.Unchanged,
		StudentsRemoved:   r.Summary.Students.Removed,

		ContactsNew:       r.Summary.Contacts.New,
		ContactsUpdated:   r.Summary.Contacts.Updated,
		ContactsUnchanged: r.Summary.Contacts.Unchanged,
		ContactsRemoved:   r.Summary.Contacts.Removed,

		Issues: len(r.Issues),
	}
}
