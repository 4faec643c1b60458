// Package config loads runtime configuration for attune frontends from a
// YAML file, environment variables (ATTUNE_* prefix) and an optional .env
// file, in ascending precedence. Library consumers do not need this
// package; it exists for the CLI and for deployments that prefer files
// over functional options.
package config
