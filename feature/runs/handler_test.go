package runs_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roster-sync/core/config"
	"roster-sync/core/sis"
	"roster-sync/feature/contacts"
	"roster-sync/feature/runs"
	"roster-sync/feature/students"
)

func newTestApp(t *testing.T, f *runs.Feature) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func newRunFeature(t *testing.T, baseURL, dropDir string) *runs.Feature {
	t.Helper()
	sisCfg := sis.Config{BaseURL: baseURL, Token: "t", PageSize: 500, MaxRetries: 0, InitialDelaySeconds: 1}
	client := sis.NewClient(sisCfg, sis.SessionFromConfig(sisCfg), zap.NewNop())

	cfg := config.SyncConfig{Template: "default", DropDir: dropDir, MatchField: students.MatchStudentNumber}
	stuSvc := students.NewService(client, cfg.MatchField, zap.NewNop())
	conSvc := contacts.NewService(client, zap.NewNop())
	return runs.NewFeature(cfg, stuSvc, conSvc, nil, nil, "", zap.NewNop())
}

func TestHandleTriggerRunAndLatestReport(t *testing.T) {
	dir := t.TempDir()
	writeDrop(t, dir)
	srv := sisServer(t, remoteRows())
	defer srv.Close()

	app := newTestApp(t, newRunFeature(t, srv.URL, dir))

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/latest", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode, "no report before the first run")

	resp, err = app.Test(httptest.NewRequest("POST", "/runs", nil), 10000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var rep runs.ChangeReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Len(t, rep.RunID, 36)
	assert.Equal(t, 1, rep.Summary.Students.New)
	assert.Equal(t, 1, rep.Summary.Students.Updated)
	assert.Equal(t, 1, rep.Summary.Contacts.Updated)

	resp, err = app.Test(httptest.NewRequest("GET", "/runs/latest", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleTriggerRun_NoSource(t *testing.T) {
	srv := sisServer(t, remoteRows())
	defer srv.Close()

	app := newTestApp(t, newRunFeature(t, srv.URL, ""))

	resp, err := app.Test(httptest.NewRequest("POST", "/runs", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleRunHistory_NoDatabase(t *testing.T) {
	srv := sisServer(t, remoteRows())
	defer srv.Close()

	app := newTestApp(t, newRunFeature(t, srv.URL, ""))

	resp, err := app.Test(httptest.NewRequest("GET", "/runs", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/runs/some-id", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	f := newRunFeature(t, "http://localhost:0", "")
	assert.Equal(t, "runs", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())
}
