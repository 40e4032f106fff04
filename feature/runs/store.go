package runs

import (
	"context"

	"gorm.io/gorm"
)

// Store persists run-history rows.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveRun inserts one run-history row.
func (s *Store) SaveRun(ctx context.Context, rec *RunRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

// GetRun fetches a run by its run id. Returns gorm.ErrRecordNotFound when
// no such run exists.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	var rec RunRecord
	if err := s.db.WithContext(ctx).Where("run_id = ?", runID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// LatestRun fetches the most recently started run.
func (s *Store) LatestRun(ctx context.Context) (*RunRecord, error) {
	var rec RunRecord
	if err := s.db.WithContext(ctx).Order("started_at DESC").First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRuns fetches up to limit runs, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var recs []RunRecord
	if err := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
