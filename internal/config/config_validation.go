// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	name := cfg.Export.FileName
	if cfg.Export.DownloadDir == "" || name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return ErrInvalidExportConfigs
	}

	return nil
}
