package tx

import "github.com/Hornan7/credential-manager/credential/identity"

// LockedState is the governance configuration attached to the credential
// token. It is created at initialization and replaced wholesale by every
// accepted transition.
type LockedState struct {
	CertificateAuthority identity.Identity   `json:"certificateAuthority"`
	Members              []identity.Identity `json:"members"`
	Delegates            []identity.Identity `json:"delegates"`
}

// Equal reports whether two states are bit-identical across every field,
// certificate hashes included.
func (s *LockedState) Equal(other *LockedState) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.CertificateAuthority.Equal(other.CertificateAuthority) &&
		identity.ListEqual(s.Members, other.Members) &&
		identity.ListEqual(s.Delegates, other.Delegates)
}

// Clone returns a deep copy of the state.
func (s *LockedState) Clone() *LockedState {
	if s == nil {
		return nil
	}

	return &LockedState{
		CertificateAuthority: s.CertificateAuthority.Clone(),
		Members:              identity.CloneList(s.Members),
		Delegates:            identity.CloneList(s.Delegates),
	}
}
