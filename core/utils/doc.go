// Package utils provides common utility functions for the roster-sync application.
// It includes helper functions for coercing loosely-typed values coming from CSV
// cells and SIS API payloads, and other shared logic that doesn't fit into
// domain-specific packages.
package utils
