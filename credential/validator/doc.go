// Package validator decides whether a transaction manipulating a locked
// credential token is valid.
//
// The decision function is pure and deterministic: it holds no state between
// calls, performs no I/O, and identical inputs always yield the identical
// verdict, so replicated validators agree bit-for-bit. Any number of calls
// may run in parallel.
//
// Core flow (Dispatch):
//   - resolve the authorization group for the requested action
//   - enforce the action's certificate policy
//   - check the strict-majority signature threshold (Authorize)
//   - locate the unique self-address output (LocateSelf)
//   - check the action's state transition rules (ValidateTransition)
//
// All five must pass for the transaction to be accepted. Rejections are
// typed RejectionError values carrying a stable ReasonCode; MalformedInput
// alone marks a builder defect rather than a governance decision.
package validator
