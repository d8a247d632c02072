// Package config handles configuration management for preload.
// Values are layered, lowest to highest: embedded defaults, the user's
// config file (TOML or YAML), then PRELOAD_* environment variables.
package config
