// Package constant provides shared constant values used across the library.
//
// Keep this package free of runtime behavior.
// It holds the wire-stable rejection code literals so that callers can match
// on them without importing the validator package.
package constant
