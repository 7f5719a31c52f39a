// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied when no source sets a field.
const (
	DefaultHTTPAddress    = "http://localhost:5000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDownloadDir    = "."
	DefaultExportFileName = "bill.pdf"
)

// StructuredConfig is the merged configuration container. It is populated
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the catalog server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Export holds where exported bill documents are written.
	Export Export `envPrefix:"EXPORT_"`

	// Log holds the diagnostic log destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base address of the catalog server, with or
	// without scheme (e.g. "localhost:5000", "https://bills.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Export holds settings for saving rendered bills.
type Export struct {
	// DownloadDir is the directory the rendered bill is saved into.
	// Env: EXPORT_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// FileName is the fixed name of the saved document.
	// Env: EXPORT_FILE_NAME
	FileName string `env:"FILE_NAME"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process environment and args (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Export: Export{
			DownloadDir: DefaultDownloadDir,
			FileName:    DefaultExportFileName,
		},
	}
}
