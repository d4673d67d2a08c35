/*
Package main is the agentmatch service entry point.

The binary exposes the capability registry, agent matching and message
routing over an HTTP API, backed by an in-memory or Redis presence
store. Subcommands:

	agentmatch serve                        start the service
	agentmatch serve --config config.yaml   start with a config file
	agentmatch version                      print version information
	agentmatch health                       probe a running instance

Configuration resolves from defaults, then the YAML file, then
AGENTMATCH_* environment variables. Version, BuildTime and GitCommit
are injected at build time via ldflags.
*/
package main
