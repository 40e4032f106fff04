package runs

import "time"

// Run status values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// RunRecord is the per-run summary row kept in the run-history database.
// The full change report is not stored here; it lives in the archive.
type RunRecord struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RunID string `gorm:"column:run_id;size:36;uniqueIndex" json:"run_id"`

	StartedAt  time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`
	Status     string    `gorm:"column:status;size:16" json:"status"`

	Template   string `gorm:"column:template;size:32" json:"template"`
	MatchField string `gorm:"column:match_field;size:32" json:"match_field"`

	StudentsNew       int `gorm:"column:students_new" json:"students_new"`
	StudentsUpdated   int `gorm:"column:students_updated" json:"students_updated"`
	StudentsUnchanged int `gorm:"column:students_unchanged" json:"students_unchanged"`
	StudentsRemoved   int `gorm:"column:students_removed" json:"students_removed"`

	ContactsNew       int `gorm:"column:contacts_new" json:"contacts_new"`
	ContactsUpdated   int `gorm:"column:contacts_updated" json:"contacts_updated"`
	ContactsUnchanged int `gorm:"column:contacts_unchanged" json:"contacts_unchanged"`
	ContactsRemoved   int `gorm:"column:contacts_removed" json:"contacts_removed"`

	Issues int `gorm:"column:issues" json:"issues"`

	Error      string `gorm:"column:error;size:1024" json:"error,omitempty"`
	ArchiveKey string `gorm:"column:archive_key;size:256" json:"archive_key,omitempty"`
}

// TableName overrides the table name.
func (RunRecord) TableName() string {
	return "sync_runs"
}
