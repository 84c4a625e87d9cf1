// Package zap adapts go.uber.org/zap to the library's log.Logger contract.
//
// Entries logged with a context carrying an active OpenTelemetry span are
// stamped with trace_id and span_id so decision logs correlate with
// distributed traces.
package zap
