package students_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roster-sync/core/roster"
	"roster-sync/core/sis"
	"roster-sync/feature/students"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCollate_MatchByStudentNumber(t *testing.T) {
	svc := students.NewService(nil, students.MatchStudentNumber, zap.NewNop())

	local := []roster.Student{
		{StudentNumber: "01001", FirstName: "Ann", LastName: "Smith"},
	}
	remote := []students.RemoteStudent{
		{LocalID: sis.Ident("1001"), FirstName: "Ann", LastName: "Smith"},
	}

	res := svc.Collate(local, remote)
	assert.Len(t, res.Unchanged, 1, "leading zeros must not break the pairing")
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestCollate_MatchByFTEID(t *testing.T) {
	svc := students.NewService(nil, students.MatchFTEID, zap.NewNop())
	assert.Equal(t, students.MatchFTEID, svc.MatchField())

	local := []roster.Student{
		{StudentNumber: "1001", FTEID: "AB12", FirstName: "Ann"},
	}
	remote := []students.RemoteStudent{
		{LocalID: sis.Ident("9999"), FTEID: sis.Ident(" ab12 "), FirstName: "Ann"},
	}

	res := svc.Collate(local, remote)
	assert.Len(t, res.Unchanged, 1, "FTEID matching folds case and whitespace")
}

func TestCollate_FirstNameChange(t *testing.T) {
	svc := students.NewService(nil, students.MatchStudentNumber, zap.NewNop())

	local := []roster.Student{
		{StudentNumber: "1001", FirstName: "Ann", LastName: "Smith", DOB: date(2012, 4, 9)},
	}
	remote := []students.RemoteStudent{
		{LocalID: sis.Ident("1001"), FirstName: "Anne", LastName: "Smith",
			DOB: sis.Date{Time: time.Date(2012, 4, 9, 14, 0, 0, 0, time.UTC)}},
	}

	res := svc.Collate(local, remote)
	require.Len(t, res.Modified, 1)

	changes := res.Modified[0].Changes
	require.Len(t, changes, 1, "dob differs only in time-of-day and must not count")
	assert.Equal(t, "first_name", changes[0].Field)
	require.NotNil(t, changes[0].OldValue)
	require.NotNil(t, changes[0].NewValue)
	assert.Equal(t, "Anne", *changes[0].OldValue)
	assert.Equal(t, "Ann", *changes[0].NewValue)
}

func TestCollate_EncodingNoiseSuppressed(t *testing.T) {
	svc := students.NewService(nil, students.MatchStudentNumber, zap.NewNop())

	local := []roster.Student{
		{StudentNumber: "1001", GradeLevel: "5", EnrollStatus: "0", Homeroom: " 12B "},
	}
	remote := []students.RemoteStudent{
		{LocalID: sis.Ident("1001"), GradeLevel: sis.Ident("5"), EnrollStatus: sis.Ident("0"), Homeroom: "12B"},
	}

	res := svc.Collate(local, remote)
	assert.Len(t, res.Unchanged, 1)
	assert.Empty(t, res.Modified)
}

func remoteStudentServer(t *testing.T, rows string, count int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/query/students/count":
			fmt.Fprintf(w, `{"count":%d}`, count)
		case "/query/students":
			fmt.Fprintf(w, `{"results":[%s]}`, rows)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestReconcile_EndToEnd(t *testing.T) {
	rows := `{"id":11,"local_id":1001,"first_name":"Anne","last_name":"Smith","dob":"2012-04-09 00:00:00","grade_level":5},` +
		`{"id":12,"local_id":"1002","first_name":"Carl","last_name":"Yu","grade_level":"4"},` +
		`{"id":13,"local_id":1004,"first_name":"Evan","last_name":"Moe"}`
	srv := remoteStudentServer(t, rows, 3)
	defer srv.Close()

	cfg := sis.Config{BaseURL: srv.URL, Token: "t", PageSize: 500, MaxRetries: 0, InitialDelaySeconds: 1}
	client := sis.NewClient(cfg, sis.SessionFromConfig(cfg), zap.NewNop())
	svc := students.NewService(client, students.MatchStudentNumber, zap.NewNop())

	local := []roster.Student{
		{StudentNumber: "1001", FirstName: "Ann", LastName: "Smith", DOB: date(2012, 4, 9), GradeLevel: "5"},
		{StudentNumber: "01002", FirstName: "Carl", LastName: "Yu", GradeLevel: "4"},
		{StudentNumber: "1003", FirstName: "Dana", LastName: "Lee"},
	}

	res, err := svc.Reconcile(context.Background(), local)
	require.NoError(t, err)

	require.Len(t, res.Added, 1)
	assert.Equal(t, "Dana", res.Added[0].FirstName)

	require.Len(t, res.Modified, 1)
	require.Len(t, res.Modified[0].Changes, 1)
	assert.Equal(t, "first_name", res.Modified[0].Changes[0].Field)
	assert.Equal(t, "Anne", *res.Modified[0].Changes[0].OldValue)
	assert.Equal(t, "Ann", *res.Modified[0].Changes[0].NewValue)

	require.Len(t, res.Unchanged, 1)
	assert.Equal(t, "Carl", res.Unchanged[0].FirstName)

	require.Len(t, res.Removed, 1)
	assert.Equal(t, "Evan", res.Removed[0].FirstName)

	summary := res.Summarize(svc.MatchField())
	assert.Equal(t, 3, summary.TotalLocal)
	assert.Equal(t, 3, summary.TotalRemote)
	assert.Equal(t, 1, summary.New)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Removed)
}

func TestHandleGetStudentCount(t *testing.T) {
	srv := remoteStudentServer(t, "", 42)
	defer srv.Close()

	cfg := sis.Config{BaseURL: srv.URL, Token: "t", PageSize: 500, InitialDelaySeconds: 1}
	client := sis.NewClient(cfg, sis.SessionFromConfig(cfg), zap.NewNop())
	feature := students.NewFeature(client, students.MatchStudentNumber, zap.NewNop())

	app := newTestApp(t, feature)
	resp, err := app.Test(httptest.NewRequest("GET", "/students/count", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
