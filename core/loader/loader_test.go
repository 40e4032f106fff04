package loader_test

import (
	"errors"
	"testing"

	"roster-sync/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	m := loader.NewManager(zap.NewNop())

	enabled := &fakeFeature{name: "students", enabled: true}
	disabled := &fakeFeature{name: "contacts", enabled: false}
	m.Register(enabled)
	m.Register(disabled)

	require.NoError(t, m.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded, "disabled features must not load")
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	app := fiber.New()
	m := loader.NewManager(zap.NewNop())

	failing := &fakeFeature{name: "runs", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "students", enabled: true}
	m.Register(failing)
	m.Register(after)

	err := m.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runs")
	assert.False(t, after.loaded, "loading stops at the first failure")
}
