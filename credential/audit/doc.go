// Package audit wraps the pure validator with decision telemetry.
//
// The validator itself performs no I/O so replicated nodes agree bit-for-bit;
// operators still need to see what was decided and why. An Auditor runs the
// same deterministic decision and, outside the security boundary, assigns
// each decision an ID, logs the verdict, records a span, and counts
// accepted/rejected outcomes.
package audit
