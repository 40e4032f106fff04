// Package database handles the run-history database connection and schema
// inspection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. The run history is the only
// thing this service writes to a database; the SIS itself is never touched.
//
// # Connect
//
// The Connect function establishes the connection with sane pool settings
// and verifies it with a ping before handing it out.
//
// # Schema Inspection
//
// GetTableColumns and VerifyColumns let the health probe confirm that the
// run-history table carries the expected columns without running a
// migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "sync_runs", []string{"id", "status"})
package database
