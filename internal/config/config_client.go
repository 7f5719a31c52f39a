package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the catalog server address.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientExport holds settings of the document download sink.
type ClientExport struct {
	DownloadDir string
	FileName    string
}

// ClientLog holds logger settings.
type ClientLog struct {
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Export  ClientExport
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Export: ClientExport{
			DownloadDir: cfg.Export.DownloadDir,
			FileName:    cfg.Export.FileName,
		},
		Log: ClientLog{File: cfg.Log.File},
	}

	return clientCfg, clientCfg.validate()
}
