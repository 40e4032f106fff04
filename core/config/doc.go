// Package config provides configuration management for the roster sync
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection for the run history
//   - Storage: S3/MinIO credentials for the drop zone and report archive
//   - Log: Logging level and format
//   - SIS: remote SIS API endpoint, credentials and retry behavior
//   - Sync: drop template, match strategy and report archiving
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
