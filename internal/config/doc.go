// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It decides where the tuning asset is read
// from and how the inspector server, logger and rate limiter are set up.
package config
