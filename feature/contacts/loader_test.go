package contacts_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roster-sync/feature/contacts"
)

func newTestApp(t *testing.T, f *contacts.Feature) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func TestFeature(t *testing.T) {
	f := contacts.NewFeature(nil, zap.NewNop())
	assert.Equal(t, "contacts", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())
}
