package runs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"roster-sync/core/config"
	"roster-sync/core/importer"
	"roster-sync/core/storage"
	"roster-sync/feature/contacts"
	"roster-sync/feature/students"
)

// ErrNoDropSource means neither a drop directory nor object storage is
// configured, so there is nothing to import from.
var ErrNoDropSource = errors.New("no drop source configured")

// ErrEmptyDropZone means the storage drop zone is configured but holds no
// objects, so no export has been uploaded yet.
var ErrEmptyDropZone = errors.New("drop zone is empty")

// Service orchestrates reconciliation runs.
type Service struct {
	cfg      config.SyncConfig
	students *students.Service
	contacts *contacts.Service
	store    *Store
	storage  storage.Client
	bucket   string
	logger   *zap.Logger

	group singleflight.Group

	mu     sync.Mutex
	latest *ChangeReport
}

// NewService creates the run orchestrator. store and storageClient may be
// nil: without a store no history is kept, without storage there is no
// object drop zone and no report archive.
func NewService(cfg config.SyncConfig, studentsSvc *students.Service, contactsSvc *contacts.Service,
	store *Store, storageClient storage.Client, bucket string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		students: studentsSvc,
		contacts: contactsSvc,
		store:    store,
		storage:  storageClient,
		bucket:   bucket,
		logger:   logger,
	}
}

// Run executes one reconciliation run and returns its report. Concurrent
// calls coalesce into a single run whose report every caller receives; the
// nightly drop never needs two fetch passes against a rate-limited SIS.
func (s *Service) Run(ctx context.Context) (*ChangeReport, error) {
	v, err, shared := s.group.Do("run", func() (any, error) {
		return s.run(ctx)
	})
	if err != nil {
		return nil, err
	}
	report := v.(*ChangeReport)
	if shared {
		s.logger.Info("Joined in-flight reconciliation run", zap.String("run_id", report.RunID))
	}
	return report, nil
}

func (s *Service) run(ctx context.Context) (*ChangeReport, error) {
	runID := uuid.NewString()
	started := time.Now().UTC()
	log := s.logger.With(zap.String("run_id", runID))

	log.Info("Reconciliation run started",
		zap.String("template", s.cfg.Template),
		zap.String("match_field", s.students.MatchField()),
	)

	report, err := s.execute(ctx, runID, log)
	finished := time.Now().UTC()
	if err != nil {
		log.Error("Reconciliation run failed", zap.Error(err))
		s.recordFailure(runID, started, finished, err)
		return nil, err
	}

	rec := report.Record(started, finished)
	rec.ArchiveKey = s.archive(ctx, report, log)
	s.persist(ctx, rec, log)

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	log.Info("Reconciliation run finished",
		zap.Duration("took", finished.Sub(started)),
		zap.Int("students_new", report.Summary.Students.New),
		zap.Int("students_updated", report.Summary.Students.Updated),
		zap.Int("contacts_new", report.Summary.Contacts.New),
		zap.Int("contacts_updated", report.Summary.Contacts.Updated),
	)
	return report, nil
}

func (s *Service) execute(ctx context.Context, runID string, log *zap.Logger) (*ChangeReport, error) {
	src, err := s.dropSource(ctx)
	if err != nil {
		return nil, err
	}

	imp := importer.New(importer.GetTemplateByName(s.cfg.Template), log)
	imp.Strict = s.cfg.Strict
	local, issues, err := imp.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}

	studentRes, err := s.students.Reconcile(ctx, local.Students)
	if err != nil {
		return nil, fmt.Errorf("student reconciliation failed: %w", err)
	}

	contactRep, err := s.contacts.Reconcile(ctx, local)
	if err != nil {
		return nil, fmt.Errorf("contact reconciliation failed: %w", err)
	}

	return AssembleReport(runID, s.cfg.Template, s.students.MatchField(), studentRes, contactRep, issues), nil
}

// dropSource picks where the drop documents come from. A configured local
// directory wins over the storage drop zone.
func (s *Service) dropSource(ctx context.Context) (importer.Source, error) {
	if s.cfg.DropDir != "" {
		return importer.DirSource(s.cfg.DropDir), nil
	}
	if s.storage == nil {
		return nil, ErrNoDropSource
	}
	if !HasObjects(ctx, s.storage, s.bucket, s.cfg.DropPrefix) {
		return nil, fmt.Errorf("%w: no objects under %s/%s", ErrEmptyDropZone, s.bucket, s.cfg.DropPrefix)
	}
	return NewDropSource(s.storage, s.bucket, s.cfg.DropPrefix), nil
}

// archive writes the full report to object storage and returns its key.
// Archiving failures downgrade to a warning: the report is already in hand
// and the run itself succeeded.
func (s *Service) archive(ctx context.Context, report *ChangeReport, log *zap.Logger) string {
	if s.storage == nil || !s.cfg.Archive {
		return ""
	}

	body, err := json.Marshal(report)
	if err != nil {
		log.Warn("Failed to encode report for archive", zap.Error(err))
		return ""
	}

	key := s.cfg.ArchivePrefix + report.RunID + ".json"
	_, err = s.storage.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		log.Warn("Failed to archive report", zap.String("key", key), zap.Error(err))
		return ""
	}

	log.Info("Report archived", zap.String("key", key))
	return key
}

func (s *Service) persist(ctx context.Context, rec *RunRecord, log *zap.Logger) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRun(ctx, rec); err != nil {
		log.Warn("Failed to record run history", zap.Error(err))
	}
}

func (s *Service) recordFailure(runID string, started, finished time.Time, runErr error) {
	if s.store == nil {
		return
	}

	msg := runErr.Error()
	if len(msg) > 1024 {
		msg = msg[:1024]
	}
	rec := &RunRecord{
		RunID:      runID,
		StartedAt:  started,
		FinishedAt: finished,
		Status:     StatusFailed,
		Template:   s.cfg.Template,
		MatchField: s.students.MatchField(),
		Error:      msg,
	}

	// The triggering context may already be dead; the history row still
	// matters, so write it under its own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.SaveRun(ctx, rec); err != nil {
		s.logger.Warn("Failed to record failed run", zap.Error(err))
	}
}

// LatestReport returns the most recent successful report held in memory.
func (s *Service) LatestReport() (*ChangeReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return nil, false
	}
	return s.latest, true
}

// History exposes the run-history store, nil when no database is configured.
func (s *Service) History() *Store {
	return s.store
}
