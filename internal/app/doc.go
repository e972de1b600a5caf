// Package app implements the s57dump command: it opens an ISO 8211 file,
// prints its schema and records in the configured format, and optionally
// queries an exchange set catalogue by coverage.
package app
