package validator

import (
	"errors"
	"fmt"

	constant "github.com/Hornan7/credential-manager/credential/constants"
)

// ReasonCode is a stable rejection code reported alongside a verdict.
type ReasonCode string

const (
	// ReasonInsufficientSignatures indicates the authorization group's threshold was not met.
	ReasonInsufficientSignatures ReasonCode = "INSUFFICIENT_SIGNATURES"
	// ReasonEmptyAuthorizationGroup indicates the relevant list was empty, making quorum impossible.
	ReasonEmptyAuthorizationGroup ReasonCode = "EMPTY_AUTHORIZATION_GROUP"
	// ReasonUnexpectedCertificates indicates certificates were present when the action forbids them.
	ReasonUnexpectedCertificates ReasonCode = "UNEXPECTED_CERTIFICATES"
	// ReasonMissingSelfOutput indicates no output returns value to the credential's own address.
	ReasonMissingSelfOutput ReasonCode = "MISSING_SELF_OUTPUT"
	// ReasonAmbiguousSelfOutput indicates multiple outputs carry the credential's own address.
	ReasonAmbiguousSelfOutput ReasonCode = "AMBIGUOUS_SELF_OUTPUT"
	// ReasonValuesNotPreserved indicates the locked value changed across the transition.
	ReasonValuesNotPreserved ReasonCode = "VALUES_NOT_PRESERVED"
	// ReasonImmutableFieldChanged indicates a field the action does not authorize changing was altered.
	ReasonImmutableFieldChanged ReasonCode = "IMMUTABLE_FIELD_CHANGED"
	// ReasonResultingListEmpty indicates the membership or delegate list would become empty.
	ReasonResultingListEmpty ReasonCode = "RESULTING_LIST_EMPTY"
	// ReasonReferenceScriptAttached indicates a forbidden reference script on the self-output.
	ReasonReferenceScriptAttached ReasonCode = "REFERENCE_SCRIPT_ATTACHED"
	// ReasonMalformedInput indicates a structural precondition violation; a builder defect,
	// not a governance decision.
	ReasonMalformedInput ReasonCode = "MALFORMED_INPUT"
	// ReasonUnsupportedAction indicates the requested action is outside the closed action set.
	ReasonUnsupportedAction ReasonCode = "UNSUPPORTED_ACTION"
)

// sentinels maps each reason code to its dependency-free sentinel so that
// callers can match rejections with errors.Is against the constants package.
var sentinels = map[ReasonCode]error{
	ReasonInsufficientSignatures:  constant.ErrInsufficientSignatures,
	ReasonEmptyAuthorizationGroup: constant.ErrEmptyAuthorizationGroup,
	ReasonUnexpectedCertificates:  constant.ErrUnexpectedCertificates,
	ReasonMissingSelfOutput:       constant.ErrMissingSelfOutput,
	ReasonAmbiguousSelfOutput:     constant.ErrAmbiguousSelfOutput,
	ReasonValuesNotPreserved:      constant.ErrValuesNotPreserved,
	ReasonImmutableFieldChanged:   constant.ErrImmutableFieldChanged,
	ReasonResultingListEmpty:      constant.ErrResultingListEmpty,
	ReasonReferenceScriptAttached: constant.ErrReferenceScriptAttached,
	ReasonMalformedInput:          constant.ErrMalformedInput,
	ReasonUnsupportedAction:       constant.ErrUnsupportedAction,
}

// RejectionError is a structured rejection: a stable code, the field or
// dimension that failed, and a human-readable message. All rejections are
// equally terminal; none propagates beyond the verdict.
type RejectionError struct {
	Code    ReasonCode
	Field   string
	Message string
}

// Error returns the formatted rejection string.
func (e RejectionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// Unwrap returns the sentinel for the rejection's code so errors.Is works
// against the constants package.
func (e RejectionError) Unwrap() error {
	return sentinels[e.Code]
}

// NewRejection creates a rejection with code, field, and message.
func NewRejection(code ReasonCode, field, message string) error {
	return RejectionError{Code: code, Field: field, Message: message}
}

// ReasonOf extracts the reason code from a rejection, empty when err is nil
// or not a RejectionError.
func ReasonOf(err error) ReasonCode {
	var rejection RejectionError
	if errors.As(err, &rejection) {
		return rejection.Code
	}

	return ""
}
