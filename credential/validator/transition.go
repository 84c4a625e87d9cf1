package validator

import (
	"github.com/Hornan7/credential-manager/credential/identity"
	"github.com/Hornan7/credential-manager/credential/tx"
)

// ValidateTransition checks the action-specific rule set over the proposed
// state transition:
//
//	(a) fields the action does not authorize changing are bit-identical,
//	(b) resulting lists the action must keep usable are non-empty,
//	(c) the self-output's locked value equals the prior value exactly,
//	(d) the self-output carries no reference script.
//
// Clauses are independent ANDs. The reported reason is the first dimension
// checked (value, script, then state rules); callers must not rely on that
// ordering, it exists for diagnostics only.
func ValidateTransition(action Action, prior, next *tx.LockedState, self tx.Output, priorValue tx.Value) error {
	if prior == nil || next == nil {
		return NewRejection(ReasonMalformedInput, "state", "prior and resulting locked states are required")
	}

	if !self.Value.Equal(priorValue) {
		return NewRejection(ReasonValuesNotPreserved, "value", "self-output value differs from the locked input value")
	}

	if len(self.ReferenceScript) > 0 {
		return NewRejection(ReasonReferenceScriptAttached, "referenceScript", "self-output must not carry a reference script")
	}

	return checkStateRules(action, prior, next)
}

// checkStateRules enforces per-action immutability and non-emptiness over
// the prior and resulting locked states.
func checkStateRules(action Action, prior, next *tx.LockedState) error {
	switch a := action.(type) {
	case RotateCold:
		if err := requireAuthorityUnchanged(prior, next); err != nil {
			return err
		}

		if !identity.ListEqual(prior.Delegates, next.Delegates) {
			return NewRejection(ReasonImmutableFieldChanged, "delegates", "rotation of members must not change the delegate list")
		}

		return requireNonEmpty(next.Members, "members")
	case RotateHot:
		if err := requireAuthorityUnchanged(prior, next); err != nil {
			return err
		}

		if !identity.ListEqual(prior.Members, next.Members) {
			return NewRejection(ReasonImmutableFieldChanged, "members", "rotation of delegates must not change the membership list")
		}

		return requireNonEmpty(next.Delegates, "delegates")
	case ResignMember:
		if err := requireAuthorityUnchanged(prior, next); err != nil {
			return err
		}

		if !identity.ListEqual(prior.Delegates, next.Delegates) {
			return NewRejection(ReasonImmutableFieldChanged, "delegates", "membership resignation must not change the delegate list")
		}

		return checkResignation(prior.Members, next.Members, a.Member, "members")
	case ResignDelegate:
		if err := requireAuthorityUnchanged(prior, next); err != nil {
			return err
		}

		if !identity.ListEqual(prior.Members, next.Members) {
			return NewRejection(ReasonImmutableFieldChanged, "members", "delegate resignation must not change the membership list")
		}

		return checkResignation(prior.Delegates, next.Delegates, a.Delegate, "delegates")
	case AuthorizeHot:
		if !prior.Equal(next) {
			return NewRejection(ReasonImmutableFieldChanged, changedField(prior, next), "hot-credential authorization must not change the locked state")
		}

		return nil
	default:
		return NewRejection(ReasonUnsupportedAction, "action", "action is outside the closed governance set")
	}
}

// checkResignation verifies that the resulting list equals the prior list
// with exactly the resigning party removed, and remains usable.
func checkResignation(prior, next []identity.Identity, resignee identity.Identity, field string) error {
	expected, found := identity.Remove(prior, resignee)
	if !found {
		return NewRejection(ReasonImmutableFieldChanged, field, "resigning party is not in the list")
	}

	if err := requireNonEmpty(expected, field); err != nil {
		return err
	}

	if !identity.ListEqual(expected, next) {
		return NewRejection(ReasonImmutableFieldChanged, field, "resulting list must equal the prior list minus the resigning party")
	}

	return nil
}

func requireAuthorityUnchanged(prior, next *tx.LockedState) error {
	if !prior.CertificateAuthority.Equal(next.CertificateAuthority) {
		return NewRejection(ReasonImmutableFieldChanged, "certificateAuthority", "the authority identity must not change for this action")
	}

	return nil
}

// requireNonEmpty rejects a transition that would empty a required list.
// An empty result is rejected, never silently truncated or repaired.
func requireNonEmpty(group []identity.Identity, field string) error {
	if len(group) == 0 {
		return NewRejection(ReasonResultingListEmpty, field, "resulting list must not be empty")
	}

	return nil
}

// changedField names the first differing state field, for diagnostics.
func changedField(prior, next *tx.LockedState) string {
	switch {
	case !prior.CertificateAuthority.Equal(next.CertificateAuthority):
		return "certificateAuthority"
	case !identity.ListEqual(prior.Members, next.Members):
		return "members"
	default:
		return "delegates"
	}
}
