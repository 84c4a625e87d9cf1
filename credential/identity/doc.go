// Package identity models the authorized parties named by a locked credential.
//
// An Identity pairs a payment key hash with the hash of the certificate that
// vouches for it. Authorization weight is carried by the key hash alone; the
// certificate hash is an audit reference and never affects party equality.
//
// Membership lists are ordered sequences, not sets. Order is preserved for
// display and auditing, and duplicate parties are collapsed with Dedupe
// immediately before any quorum computation.
package identity
