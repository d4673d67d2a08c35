// Package api contains the HTTP surface of the agentmatch service.
// Handlers live in the handlers subpackage; route registration happens
// in cmd/agentmatch.
package api
