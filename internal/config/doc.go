// Package config defines the application configuration structure and loading
// logic. Configuration is sourced from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence, then validated.
package config
