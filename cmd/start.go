package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roster-sync/core/config"
	"roster-sync/core/database"
	"roster-sync/core/loader"
	"roster-sync/core/logger"
	"roster-sync/core/middleware"
	"roster-sync/core/sis"
	"roster-sync/core/storage"

	"roster-sync/feature/contacts"
	"roster-sync/feature/runs"
	"roster-sync/feature/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "roster-sync/docs/swagger"
)

// @title Roster Sync API
// @version 1.0
// @description Read-only reconciliation reports between the district roster export and the SIS.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roster sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Without it runs still execute; only the history endpoints degrade.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			if err := db.AutoMigrate(&runs.RunRecord{}); err != nil {
				logg.Warn("Failed to migrate run history table", zap.Error(err))
			}
			logg.Info("Connected to run history database")
		}

		// 4. Initialize Storage (Optional)
		// Without it there is no object drop zone and no report archive.
		var store storage.Client
		if cfg.Storage.Endpoint == "" {
			logg.Warn("Object storage not configured, drop zone and report archive disabled")
		} else {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ensureBucket(store, cfg.Storage.Bucket, logg)
		}

		// 5. SIS Client (Required)
		if cfg.SIS.BaseURL == "" {
			logg.Fatal("SIS base URL is not configured")
		}
		client := sis.NewClient(cfg.SIS, sis.SessionFromConfig(cfg.SIS), logg)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		studentsFeature := students.NewFeature(client, cfg.Sync.MatchField, logg)
		contactsFeature := contacts.NewFeature(client, logg)
		mgr.Register(studentsFeature)
		mgr.Register(contactsFeature)
		mgr.Register(runs.NewFeature(cfg.Sync, studentsFeature.Service(), contactsFeature.Service(),
			db, store, cfg.Storage.Bucket, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(middleware.RayID())

		// 2. Request logging
		app.Use(middleware.RequestLogger(logg))

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 2.6 Health probe (Public)
		app.Get("/health", healthHandler(cfg, db, store))

		// 3. Auth (Protect API)
		app.Use(middleware.Auth(cfg.Server.ApiKey))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// ensureBucket creates the configured bucket on a fresh deployment so the
// first archive write does not fail. Failures downgrade to a warning; the
// bucket may already be managed externally.
func ensureBucket(store storage.Client, bucket string, logg *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ok, err := store.BucketExists(ctx, bucket)
	if err != nil {
		logg.Warn("Could not verify storage bucket", zap.String("bucket", bucket), zap.Error(err))
		return
	}
	if ok {
		return
	}
	if err := store.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logg.Warn("Could not create storage bucket", zap.String("bucket", bucket), zap.Error(err))
		return
	}
	logg.Info("Created storage bucket", zap.String("bucket", bucket))
}

// healthHandler reports dependency health without touching the SIS; the
// probe runs often and the SIS is rate limited.
func healthHandler(cfg *config.Config, db *gorm.DB, store storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok"}

		if db == nil {
			status["database"] = "absent"
		} else if missing, err := database.VerifyColumns(db, runs.RunRecord{}.TableName(),
			[]string{"run_id", "status", "started_at", "finished_at"}); err != nil {
			status["database"] = "error: " + err.Error()
		} else if len(missing) > 0 {
			status["database"] = fmt.Sprintf("missing columns: %v", missing)
		} else {
			status["database"] = "ok"
		}

		if store == nil {
			status["storage"] = "absent"
		} else if ok, err := store.BucketExists(c.Context(), cfg.Storage.Bucket); err != nil {
			status["storage"] = "error: " + err.Error()
		} else if !ok {
			status["storage"] = "bucket missing"
		} else {
			status["storage"] = "ok"
		}

		return c.JSON(status)
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
