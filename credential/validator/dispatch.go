package validator

import (
	"github.com/Hornan7/credential-manager/credential/tx"
)

// Verdict is the outcome of a validation pass: the accept/reject decision
// plus the rejection reason for observability. Rejected verdicts carry the
// underlying RejectionError in Err.
type Verdict struct {
	Accepted bool
	Reason   ReasonCode
	Err      error
}

// Dispatch runs the full validation pass for an action against the prior
// locked state and the transaction view:
//
//  1. resolve the authorization group for the action
//  2. enforce the action's certificate policy
//  3. check the strict-majority threshold over the group
//  4. locate the unique self-address output
//  5. check the action's state transition rules
//
// A nil return accepts the transaction. Any error rejects it; there is no
// partial acceptance and no retry, the validator holds no state between
// calls.
func Dispatch(action Action, prior *tx.LockedState, c *tx.Context) error {
	if prior == nil {
		return NewRejection(ReasonMalformedInput, "priorState", "prior locked state is required")
	}

	group, _, err := authorizationGroup(action, prior)
	if err != nil {
		return err
	}

	if !certificatesPermitted(action) && len(c.Certificates()) > 0 {
		return NewRejection(ReasonUnexpectedCertificates, "certificates", "certificates must be empty for this action")
	}

	if err := Authorize(group, c.Signatories()); err != nil {
		return err
	}

	self, err := LocateSelf(c)
	if err != nil {
		return err
	}

	if self.Datum == nil {
		return NewRejection(ReasonMalformedInput, "outputs", "self-output carries no locked state")
	}

	selfInput, err := c.SelfInput()
	if err != nil {
		// LocateSelf already resolved the self input; reaching this is a
		// context defect.
		return NewRejection(ReasonMalformedInput, "selfReference", err.Error())
	}

	return ValidateTransition(action, prior, self.Datum, self, selfInput.Output.Value)
}

// Decide wraps Dispatch into a non-error verdict value for callers that
// report outcomes rather than propagate them.
func Decide(action Action, prior *tx.LockedState, c *tx.Context) Verdict {
	if err := Dispatch(action, prior, c); err != nil {
		return Verdict{Accepted: false, Reason: ReasonOf(err), Err: err}
	}

	return Verdict{Accepted: true}
}
