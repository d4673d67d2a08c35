// Package server manages the lifecycle of the agentmatch HTTP
// listeners: non-blocking start, graceful shutdown and signal
// handling. The service runs two managers, one for the API and one for
// the metrics endpoint.
package server
