// Package config provides configuration management for the vehicle catalog.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to catalog.Config and gallery.Config for other packages
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// A missing file yields DefaultSettings()
//
// # Configuration Options
//
// Settings includes options for:
//   - Catalog location, delimiter and kind filter
//   - Photo and thumbnail directories
//   - Concurrency limits
//   - Verbose diagnostics
package config
