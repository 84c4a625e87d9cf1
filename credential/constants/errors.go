package constant

import "errors"

var (
	// ErrInsufficientSignatures maps to rejection code INSUFFICIENT_SIGNATURES.
	ErrInsufficientSignatures = errors.New("INSUFFICIENT_SIGNATURES")
	// ErrEmptyAuthorizationGroup maps to rejection code EMPTY_AUTHORIZATION_GROUP.
	ErrEmptyAuthorizationGroup = errors.New("EMPTY_AUTHORIZATION_GROUP")
	// ErrUnexpectedCertificates maps to rejection code UNEXPECTED_CERTIFICATES.
	ErrUnexpectedCertificates = errors.New("UNEXPECTED_CERTIFICATES")
	// ErrMissingSelfOutput maps to rejection code MISSING_SELF_OUTPUT.
	ErrMissingSelfOutput = errors.New("MISSING_SELF_OUTPUT")
	// ErrAmbiguousSelfOutput maps to rejection code AMBIGUOUS_SELF_OUTPUT.
	ErrAmbiguousSelfOutput = errors.New("AMBIGUOUS_SELF_OUTPUT")
	// ErrValuesNotPreserved maps to rejection code VALUES_NOT_PRESERVED.
	ErrValuesNotPreserved = errors.New("VALUES_NOT_PRESERVED")
	// ErrImmutableFieldChanged maps to rejection code IMMUTABLE_FIELD_CHANGED.
	ErrImmutableFieldChanged = errors.New("IMMUTABLE_FIELD_CHANGED")
	// ErrResultingListEmpty maps to rejection code RESULTING_LIST_EMPTY.
	ErrResultingListEmpty = errors.New("RESULTING_LIST_EMPTY")
	// ErrReferenceScriptAttached maps to rejection code REFERENCE_SCRIPT_ATTACHED.
	ErrReferenceScriptAttached = errors.New("REFERENCE_SCRIPT_ATTACHED")
	// ErrMalformedInput maps to rejection code MALFORMED_INPUT.
	ErrMalformedInput = errors.New("MALFORMED_INPUT")
	// ErrUnsupportedAction maps to rejection code UNSUPPORTED_ACTION.
	ErrUnsupportedAction = errors.New("UNSUPPORTED_ACTION")
)
