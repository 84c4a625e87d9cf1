package identity

import "bytes"

// Identity represents one authorized party: a payment key hash plus the hash
// of the certificate that introduced it.
type Identity struct {
	KeyHash         []byte `json:"keyHash"`
	CertificateHash []byte `json:"certificateHash"`
}

// SameParty reports whether two identities represent the same party.
// Party equality is key-hash only; certificate hashes may differ.
func (i Identity) SameParty(other Identity) bool {
	return bytes.Equal(i.KeyHash, other.KeyHash)
}

// Equal reports whether two identities are bit-identical, certificate
// hash included. Used by immutability checks, not by quorum counting.
func (i Identity) Equal(other Identity) bool {
	return bytes.Equal(i.KeyHash, other.KeyHash) && bytes.Equal(i.CertificateHash, other.CertificateHash)
}

// Clone returns a deep copy of the identity.
func (i Identity) Clone() Identity {
	return Identity{
		KeyHash:         bytes.Clone(i.KeyHash),
		CertificateHash: bytes.Clone(i.CertificateHash),
	}
}

// Dedupe collapses a group by key hash, keeping the first occurrence of each
// party (and therefore its certificate hash) and preserving list order.
// Listing the same party twice, with the same or a different certificate
// hash, never changes the group's authorization weight.
func Dedupe(group []Identity) []Identity {
	if len(group) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(group))
	deduped := make([]Identity, 0, len(group))

	for _, member := range group {
		key := string(member.KeyHash)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		deduped = append(deduped, member)
	}

	return deduped
}

// ContainsKey reports whether any member of the group carries the key hash.
func ContainsKey(group []Identity, keyHash []byte) bool {
	for _, member := range group {
		if bytes.Equal(member.KeyHash, keyHash) {
			return true
		}
	}

	return false
}

// Remove returns the group with every occurrence of the member's party
// removed, plus whether anything was removed. Matching is by key hash, so a
// party listed twice resigns completely in one step.
func Remove(group []Identity, member Identity) ([]Identity, bool) {
	remaining := make([]Identity, 0, len(group))
	found := false

	for _, candidate := range group {
		if candidate.SameParty(member) {
			found = true
			continue
		}

		remaining = append(remaining, candidate)
	}

	return remaining, found
}

// ListEqual reports whether two groups are bit-identical: same length, same
// order, same key and certificate hashes at every position.
func ListEqual(a, b []Identity) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// CloneList returns a deep copy of a group.
func CloneList(group []Identity) []Identity {
	if group == nil {
		return nil
	}

	cloned := make([]Identity, len(group))
	for i, member := range group {
		cloned[i] = member.Clone()
	}

	return cloned
}
