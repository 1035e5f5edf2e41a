// Package config provides configuration management for the gradebook CLI.
//
// Precedence (highest to lowest): flags > env vars > config file >
// defaults. The config file is gradebook.yaml (or .yml) in the working
// directory, unless --config points elsewhere.
package config

import "github.com/gradebook-labs/gradebook/internal/gradebook"

// Config holds all CLI configuration options.
type Config struct {
	RosterPath    string  `koanf:"roster"`
	PassThreshold float64 `koanf:"pass_threshold"`
	OutputFormat  string  `koanf:"output"`
	Verbose       bool    `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultPassThreshold mirrors the domain default so commands can use
// config.DefaultPassThreshold without importing the domain package.
const DefaultPassThreshold = gradebook.DefaultPassThreshold
