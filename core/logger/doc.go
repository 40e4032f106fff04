// Package logger provides the structured logging facility, based on Zap.
//
// # Context Awareness
//
// Log lines emitted while serving a request carry the request's RayID so a
// whole reconciliation run triggered over HTTP can be correlated. The
// WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("run failed", zap.Error(err))
package logger
