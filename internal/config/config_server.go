package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultServerAddress   = ":5000"
	DefaultShutdownTimeout = 5 * time.Second
)

// ServerConfig configures the development catalog server.
type ServerConfig struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// ShutdownTimeout bounds the graceful drain on exit.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// GetServerConfig builds and validates the development server configuration
// from the process environment and command-line arguments.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseServerFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ServerConfig)
	for _, source := range []*ServerConfig{envCfg, flagsCfg, defaultServerConfig()} {
		if err = mergo.Merge(cfg, source); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

// parseServerFlags parses the development server flags from args.
//
// Flags:
//
//	-a listen address host:port
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
func parseServerFlags(args []string) (*ServerConfig, error) {
	var address string
	var shutdownTimeout time.Duration

	fs := flag.NewFlagSet("bill-dev-server", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Listen address host:port")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ServerConfig{HTTPAddress: address, ShutdownTimeout: shutdownTimeout}, nil
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPAddress:     DefaultServerAddress,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" || cfg.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if !strings.Contains(cfg.HTTPAddress, ":") {
		return errors.Join(ErrInvalidServerConfigs, fmt.Errorf("address %q has no port", cfg.HTTPAddress))
	}
	return nil
}
