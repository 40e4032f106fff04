// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure for it: the listen port and the API
// key protecting the reconciliation endpoints.
package server
