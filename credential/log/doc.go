// Package log defines the minimal structured logging contract used by the
// library's observability wrappers.
//
// The core validator never logs; this interface exists for the audit layer
// and for hosts that want decision telemetry. The zap subpackage provides
// the production implementation.
package log
