package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"roster-sync/core/config"
	"roster-sync/core/database"
	"roster-sync/core/logger"
	"roster-sync/core/sis"
	"roster-sync/core/storage"
	"roster-sync/feature/contacts"
	"roster-sync/feature/runs"
	"roster-sync/feature/students"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	dropDir      string
	outPath      string
	matchField   string
	templateName string
	saveHistory  bool
	strictImport bool
)

// reconcileCmd runs one reconciliation pass without the HTTP server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation pass and write the change report",
	Long: `Run one reconciliation pass: import the CSV drop, fetch the remote
collections from the SIS, and write the full change report as JSON.

The report goes to --out ("-" for stdout). Nothing is ever written to
the SIS.

Examples:
  # Reconcile a local drop directory, report to stdout
  roster-sync reconcile --drop ./drop --out -

  # Use the storage drop zone, archive the report and record history
  roster-sync reconcile --save

  # Match students by FTEID using the legacy drop layout
  roster-sync reconcile --drop ./drop --match fteid --template legacy`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&dropDir, "drop", "", "Local drop directory (overrides the storage drop zone)")
	reconcileCmd.Flags().StringVar(&outPath, "out", "-", "Report destination file, or - for stdout")
	reconcileCmd.Flags().StringVar(&matchField, "match", "", "Student match field (student_number, fteid)")
	reconcileCmd.Flags().StringVar(&templateName, "template", "", "Drop template name (default, legacy)")
	reconcileCmd.Flags().BoolVar(&saveHistory, "save", false, "Record the run in the history database")
	reconcileCmd.Flags().BoolVar(&strictImport, "strict", false, "Fail on any import issue instead of reporting it")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the configured run settings
	if dropDir != "" {
		cfg.Sync.DropDir = dropDir
	}
	if matchField != "" {
		cfg.Sync.MatchField = matchField
	}
	if templateName != "" {
		cfg.Sync.Template = templateName
	}
	if strictImport {
		cfg.Sync.Strict = true
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.SIS.BaseURL == "" {
		return fmt.Errorf("SIS base URL is not configured")
	}
	client := sis.NewClient(cfg.SIS, sis.SessionFromConfig(cfg.SIS), l)

	// Connect to storage when configured; the drop zone and the report
	// archive need it.
	var store storage.Client
	if cfg.Storage.Endpoint != "" {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	// Connect to the history database only when asked to save.
	var history *runs.Store
	if saveHistory {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&runs.RunRecord{}); err != nil {
			return fmt.Errorf("failed to migrate run history table: %w", err)
		}
		history = runs.NewStore(db)
	}

	studentsSvc := students.NewService(client, cfg.Sync.MatchField, l)
	contactsSvc := contacts.NewService(client, l)
	svc := runs.NewService(cfg.Sync, studentsSvc, contactsSvc, history, store, cfg.Storage.Bucket, l)

	report, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printReportSummary(l, report)

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	body = append(body, '\n')

	if outPath == "-" {
		_, err = os.Stdout.Write(body)
		return err
	}
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	l.Info("Report written", zap.String("path", outPath))
	return nil
}

// printReportSummary logs the aggregate counts of a finished run.
func printReportSummary(l *zap.Logger, report *runs.ChangeReport) {
	st := report.Summary.Students
	ct := report.Summary.Contacts

	l.Info("Student reconciliation",
		zap.Int("total_local", st.TotalLocal),
		zap.Int("total_remote", st.TotalRemote),
		zap.Int("new", st.New),
		zap.Int("updated", st.Updated),
		zap.Int("unchanged", st.Unchanged),
		zap.Int("removed", st.Removed),
		zap.String("match_field", st.MatchField),
	)
	l.Info("Contact reconciliation",
		zap.Int("total_local", ct.TotalLocal),
		zap.Int("total_remote", ct.TotalRemote),
		zap.Int("new", ct.New),
		zap.Int("updated", ct.Updated),
		zap.Int("unchanged", ct.Unchanged),
		zap.Int("removed", ct.Removed),
	)
	if len(report.Issues) > 0 {
		l.Warn("Import issues", zap.Int("count", len(report.Issues)))
	}
	if !report.HasChanges() {
		l.Info("No changes detected")
	}
}
