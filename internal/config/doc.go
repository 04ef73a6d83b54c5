// Package config loads, normalizes, and validates the tool's TOML
// configuration. The convert pipeline receives an immutable *Config; nothing
// reads configuration from globals.
package config
