// Package telemetry wraps OpenTelemetry SDK setup for the agentmatch
// service. It configures a TracerProvider and MeterProvider with OTLP
// gRPC export. When telemetry is disabled no exporters are created and
// the global providers stay noop.
package telemetry
