package runs

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-sync/core/config"
	"roster-sync/core/storage"
	"roster-sync/feature/contacts"
	"roster-sync/feature/students"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the runs feature. db and storageClient may be nil; the
// feature stays enabled and degrades to report-only behavior without them.
func NewFeature(cfg config.SyncConfig, studentsSvc *students.Service, contactsSvc *contacts.Service,
	db *gorm.DB, storageClient storage.Client, bucket string, logger *zap.Logger) *Feature {
	var store *Store
	if db != nil {
		store = NewStore(db)
	}
	svc := NewService(cfg, studentsSvc, contactsSvc, store, storageClient, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the run orchestrator for CLI wiring.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "runs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
