// Package config loads and validates the agentmatch service
// configuration. Values are resolved with a fixed priority: built-in
// defaults, then an optional YAML file, then environment variables
// prefixed with AGENTMATCH.
package config
