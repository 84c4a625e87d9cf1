// Package tx provides the immutable transaction view consumed by the validator.
//
// A Context is built once per validation call by the decoding collaborator and
// is read-only afterwards: the constructor deep-copies every sequence it is
// given and accessors hand out copies, so no caller can mutate the view a
// validator is deciding over.
//
// Core types:
//   - Value: multi-asset balance with exact decimal arithmetic.
//   - LockedState: the governance configuration attached to the credential.
//   - Output / Input / OutputReference: ledger plumbing around the credential.
//   - Context: the full transaction view with its self-input resolution.
package tx
