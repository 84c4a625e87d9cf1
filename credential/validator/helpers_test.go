package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hornan7/credential-manager/credential/identity"
	"github.com/Hornan7/credential-manager/credential/tx"
)

// ---------------------------------------------------------------------------
// Shared test fixtures
// ---------------------------------------------------------------------------

var (
	scriptAddress = []byte("credential-script-address")
	walletAddress = []byte("payment-wallet-address")
	selfReference = tx.OutputReference{TxID: []byte("prior-tx"), Index: 0}
)

// testParty creates an identity with key and certificate hashes derived from
// a short name.
func testParty(name string) identity.Identity {
	return identity.Identity{
		KeyHash:         []byte("key-" + name),
		CertificateHash: []byte("cert-" + name),
	}
}

// lockedValue is the value held by the credential input in fixtures.
func lockedValue() tx.Value {
	return tx.Value{
		"lovelace":   decimal.NewFromInt(5_000_000),
		"credential": decimal.NewFromInt(1),
	}
}

// priorState builds the baseline governance configuration: an authority,
// three members, and two delegates.
func priorState() *tx.LockedState {
	return &tx.LockedState{
		CertificateAuthority: testParty("authority"),
		Members:              []identity.Identity{testParty("alice"), testParty("bob"), testParty("carol")},
		Delegates:            []identity.Identity{testParty("dora"), testParty("evan")},
	}
}

// keysOf projects a group onto its key hashes.
func keysOf(group []identity.Identity) [][]byte {
	keys := make([][]byte, len(group))
	for i, member := range group {
		keys[i] = member.KeyHash
	}

	return keys
}

// contextParams tweaks buildContext away from a well-formed transaction.
type contextParams struct {
	next         *tx.LockedState
	selfValue    tx.Value
	selfCount    int
	signatories  [][]byte
	certificates []tx.Certificate
	refScript    []byte
	selfRef      *tx.OutputReference
	noDatum      bool
}

// buildContext assembles a transaction view spending the credential input.
// Defaults produce a well-formed transaction carrying next as the proposed
// state, signed by the given signatories.
func buildContext(prior *tx.LockedState, p contextParams) *tx.Context {
	if p.selfCount == 0 {
		p.selfCount = 1
	}

	if p.selfValue == nil {
		p.selfValue = lockedValue()
	}

	selfInput := tx.Input{
		Reference: selfReference,
		Output: tx.Output{
			Address: scriptAddress,
			Value:   lockedValue(),
			Datum:   prior,
		},
	}

	outputs := []tx.Output{
		{Address: walletAddress, Value: tx.NewValue("lovelace", decimal.NewFromInt(2_000_000))},
	}

	for i := 0; i < p.selfCount; i++ {
		datum := p.next
		if p.noDatum {
			datum = nil
		}

		outputs = append(outputs, tx.Output{
			Address:         scriptAddress,
			Value:           p.selfValue,
			Datum:           datum,
			ReferenceScript: p.refScript,
		})
	}

	selfRef := selfReference
	if p.selfRef != nil {
		selfRef = *p.selfRef
	}

	return tx.NewContext(tx.ContextInput{
		Inputs: []tx.Input{
			{Reference: tx.OutputReference{TxID: []byte("fee-tx"), Index: 3}, Output: tx.Output{Address: walletAddress}},
			selfInput,
		},
		Outputs:       outputs,
		Signatories:   p.signatories,
		Certificates:  p.certificates,
		SelfReference: selfRef,
	})
}

// assertRejection extracts a RejectionError from err, verifies the reason
// code, and returns it for additional assertions.
func assertRejection(t *testing.T, err error, expected ReasonCode) RejectionError {
	t.Helper()

	require.Error(t, err)

	var rejection RejectionError
	require.True(t, errors.As(err, &rejection), "expected RejectionError, got %T: %v", err, err)
	assert.Equal(t, expected, rejection.Code)

	return rejection
}
