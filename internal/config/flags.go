package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a catalog server address ([scheme://]host:port)
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-download-dir directory the exported bill is saved into
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration
	var downloadDir string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("bill-client", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Catalog server address [scheme://]host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for exported bills")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Export: Export{
			DownloadDir: downloadDir,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
