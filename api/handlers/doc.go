// Package handlers implements the agentmatch HTTP handlers: health and
// readiness probes, capability catalog queries, agent matching,
// message routing and agent presence. All responses use the common
// Response envelope.
package handlers
