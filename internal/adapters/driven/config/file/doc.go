// Package file provides file-based configuration for htmlreg.
//
// Configuration is read in three layers, later layers winning:
//
//  1. built-in defaults
//  2. the TOML config file (~/.htmlreg/config.toml by default)
//  3. environment variables, including those from an optional .env file
//
// CLI flags are applied on top by the caller.
package file
