// Package tracing configures the OpenTelemetry tracer provider and exports
// spans over OTLP/gRPC.
package tracing
