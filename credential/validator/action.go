package validator

import (
	"github.com/Hornan7/credential-manager/credential/identity"
	"github.com/Hornan7/credential-manager/credential/tx"
)

// Action is the closed set of governance operations over a locked credential.
// The set is sealed: only the variants in this package satisfy it, and every
// dispatch site switches exhaustively over them.
type Action interface {
	// Name returns the stable action name used in verdicts and telemetry.
	Name() string

	isAction()
}

// RotateCold replaces the membership list. Authorized by the membership
// list; certificate authority and delegates must not change.
type RotateCold struct{}

// RotateHot replaces the delegate list. Authorized by the delegate list;
// certificate authority and members must not change.
type RotateHot struct{}

// ResignMember removes one named party from the membership list.
// Authorized by the membership list.
type ResignMember struct {
	Member identity.Identity
}

// ResignDelegate removes one named party from the delegate list.
// Authorized by the delegate list.
type ResignDelegate struct {
	Delegate identity.Identity
}

// AuthorizeHot authorizes a hot credential on behalf of the committee.
// Authorized by the delegate list; the locked state must not change at all.
// The authorization certificate it emits is a legitimate side effect, so
// this is the one action whose certificate policy is permissive.
type AuthorizeHot struct{}

// Name implements Action.
func (RotateCold) Name() string { return "ROTATE_COLD" }

// Name implements Action.
func (RotateHot) Name() string { return "ROTATE_HOT" }

// Name implements Action.
func (ResignMember) Name() string { return "RESIGN_MEMBER" }

// Name implements Action.
func (ResignDelegate) Name() string { return "RESIGN_DELEGATE" }

// Name implements Action.
func (AuthorizeHot) Name() string { return "AUTHORIZE_HOT" }

func (RotateCold) isAction()     {}
func (RotateHot) isAction()      {}
func (ResignMember) isAction()   {}
func (ResignDelegate) isAction() {}
func (AuthorizeHot) isAction()   {}

// authorizationGroup resolves which list authorizes the action, plus the
// field name used in rejections.
func authorizationGroup(action Action, prior *tx.LockedState) ([]identity.Identity, string, error) {
	switch action.(type) {
	case RotateCold, ResignMember:
		return prior.Members, "members", nil
	case RotateHot, ResignDelegate, AuthorizeHot:
		return prior.Delegates, "delegates", nil
	default:
		return nil, "", NewRejection(ReasonUnsupportedAction, "action", "action is outside the closed governance set")
	}
}

// certificatesPermitted reports whether the action tolerates certificate
// records in the transaction. Certificates are a conflicting mutation
// channel for every action except the hot-credential authorization that
// exists to emit one.
func certificatesPermitted(action Action) bool {
	switch action.(type) {
	case AuthorizeHot:
		return true
	default:
		return false
	}
}
