package students

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"roster-sync/core/normalize"
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
	"roster-sync/core/sis"
)

// Match key strategies.
const (
	MatchStudentNumber = "student_number"
	MatchFTEID         = "fteid"
)

// Service handles student reconciliation.
type Service struct {
	client     *sis.Client
	matchField string
	logger     *zap.Logger
}

// NewService creates a new student service. An unknown match field falls
// back to student number.
func NewService(client *sis.Client, matchField string, logger *zap.Logger) *Service {
	if matchField != MatchFTEID {
		matchField = MatchStudentNumber
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, matchField: matchField, logger: logger}
}

// MatchField returns the active match key strategy.
func (s *Service) MatchField() string {
	return s.matchField
}

// Count returns the number of students the SIS query matches.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.client.QueryCount(ctx, QueryName, nil)
}

// FetchRemote downloads the complete remote student collection.
func (s *Service) FetchRemote(ctx context.Context) ([]RemoteStudent, error) {
	rows, err := s.client.QueryAll(ctx, QueryName, nil)
	if err != nil {
		return nil, err
	}
	remote, err := sis.DecodeRows[RemoteStudent](rows)
	if err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return remote, nil
}

// Reconcile fetches the remote collection and collates it against the local
// export.
func (s *Service) Reconcile(ctx context.Context, local []roster.Student) (reconcile.Result[roster.Student, RemoteStudent], error) {
	remote, err := s.FetchRemote(ctx)
	if err != nil {
		return reconcile.Result[roster.Student, RemoteStudent]{}, err
	}
	return s.Collate(local, remote), nil
}

// Collate classifies the two collections without touching the network.
func (s *Service) Collate(local []roster.Student, remote []RemoteStudent) reconcile.Result[roster.Student, RemoteStudent] {
	return reconcile.Collate(local, remote, s.options())
}

func (s *Service) options() reconcile.Options[roster.Student, RemoteStudent] {
	opts := reconcile.Options[roster.Student, RemoteStudent]{
		Entity: "student",
		Diff:   reconcile.Differ(Rules()),
		Logger: s.logger,
	}
	if s.matchField == MatchFTEID {
		opts.LocalKey = func(st roster.Student) string { return normalize.Fold(st.FTEID) }
		opts.RemoteKey = func(r RemoteStudent) string { return normalize.Fold(r.FTEID.String()) }
		return opts
	}
	opts.LocalKey = func(st roster.Student) string { return reconcile.NumericKey(st.StudentNumber) }
	opts.RemoteKey = func(r RemoteStudent) string { return reconcile.NumericKey(r.LocalID.String()) }
	return opts
}
