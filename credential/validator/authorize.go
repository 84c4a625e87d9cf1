package validator

import (
	"fmt"

	"github.com/Hornan7/credential-manager/credential/identity"
)

// Threshold returns the strict-majority signer count for a group of n
// distinct parties: floor(n/2)+1. A strict majority, not >= half, so a
// 50/50 split can never yield two simultaneously valid conflicting
// transactions.
func Threshold(n int) int {
	return n/2 + 1
}

// Authorize checks whether the signatory set satisfies a strict-majority
// threshold over the group. The group is deduped by key hash first, so
// duplicate listings never inflate or deflate the quorum. An empty group is
// rejected unconditionally: no quorum is possible, independent of the
// signatory set.
func Authorize(group []identity.Identity, signatories [][]byte) error {
	distinct := identity.Dedupe(group)
	if len(distinct) == 0 {
		return NewRejection(ReasonEmptyAuthorizationGroup, "group", "authorization group is empty, quorum is impossible")
	}

	signed := make(map[string]struct{}, len(signatories))
	for _, signatory := range signatories {
		signed[string(signatory)] = struct{}{}
	}

	count := 0

	for _, member := range distinct {
		if _, ok := signed[string(member.KeyHash)]; ok {
			count++
		}
	}

	required := Threshold(len(distinct))
	if count < required {
		return NewRejection(
			ReasonInsufficientSignatures,
			"signatories",
			fmt.Sprintf("%d of %d distinct group members signed, %d required", count, len(distinct), required),
		)
	}

	return nil
}
