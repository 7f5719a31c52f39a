// Package config provides configuration loading, merging, and validation
// for the billing client and its development server.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from CONFIG or -c/-config)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig]. The development server reads
// a smaller [ServerConfig] from env and flags via [GetServerConfig].
package config
