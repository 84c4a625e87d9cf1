package validator_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Hornan7/credential-manager/credential/identity"
	"github.com/Hornan7/credential-manager/credential/tx"
	"github.com/Hornan7/credential-manager/credential/validator"
)

func ExampleDecide() {
	alice := identity.Identity{KeyHash: []byte("key-alice"), CertificateHash: []byte("cert-alice")}
	bob := identity.Identity{KeyHash: []byte("key-bob"), CertificateHash: []byte("cert-bob")}
	carol := identity.Identity{KeyHash: []byte("key-carol"), CertificateHash: []byte("cert-carol")}
	dora := identity.Identity{KeyHash: []byte("key-dora"), CertificateHash: []byte("cert-dora")}

	prior := &tx.LockedState{
		CertificateAuthority: identity.Identity{KeyHash: []byte("key-authority")},
		Members:              []identity.Identity{alice, bob, carol},
		Delegates:            []identity.Identity{dora},
	}

	// The proposed state replaces the membership list and nothing else.
	next := prior.Clone()
	next.Members = []identity.Identity{alice, carol}

	selfRef := tx.OutputReference{TxID: []byte("prior-tx"), Index: 0}
	locked := tx.NewValue("lovelace", decimal.NewFromInt(5_000_000))

	view := tx.NewContext(tx.ContextInput{
		Inputs: []tx.Input{{
			Reference: selfRef,
			Output:    tx.Output{Address: []byte("script"), Value: locked, Datum: prior},
		}},
		Outputs: []tx.Output{{
			Address: []byte("script"), Value: locked, Datum: next,
		}},
		Signatories:   [][]byte{alice.KeyHash, bob.KeyHash},
		SelfReference: selfRef,
	})

	// Two of three members signed: strict majority reached.
	verdict := validator.Decide(validator.RotateCold{}, prior, view)
	fmt.Println(verdict.Accepted)

	// A single signature misses the threshold.
	short := tx.NewContext(tx.ContextInput{
		Inputs: []tx.Input{{
			Reference: selfRef,
			Output:    tx.Output{Address: []byte("script"), Value: locked, Datum: prior},
		}},
		Outputs: []tx.Output{{
			Address: []byte("script"), Value: locked, Datum: next,
		}},
		Signatories:   [][]byte{alice.KeyHash},
		SelfReference: selfRef,
	})

	verdict = validator.Decide(validator.RotateCold{}, prior, short)
	fmt.Println(verdict.Accepted, verdict.Reason)

	// Output:
	// true
	// false INSUFFICIENT_SIGNATURES
}
