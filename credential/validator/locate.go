package validator

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Hornan7/credential-manager/credential/tx"
)

// LocateSelf finds the single output returning value to the credential's own
// script address, the address of the output referenced by the context's self
// input.
//
// Zero matches and multiple matches are distinct terminal rejections; this
// check runs before any field-level comparison so ambiguity is never
// defaulted to "first match". An unresolvable self reference is a builder
// defect and surfaces as MalformedInput.
func LocateSelf(c *tx.Context) (tx.Output, error) {
	self, err := c.SelfInput()
	if err != nil {
		if errors.Is(err, tx.ErrSelfInputNotFound) {
			return tx.Output{}, NewRejection(ReasonMalformedInput, "selfReference", err.Error())
		}

		return tx.Output{}, fmt.Errorf("resolve self input: %w", err)
	}

	var (
		located tx.Output
		matches int
	)

	for _, output := range c.Outputs() {
		if !bytes.Equal(output.Address, self.Output.Address) {
			continue
		}

		matches++
		if matches == 1 {
			located = output
		}
	}

	switch {
	case matches == 0:
		return tx.Output{}, NewRejection(ReasonMissingSelfOutput, "outputs", "no output returns value to the credential's own address")
	case matches > 1:
		return tx.Output{}, NewRejection(
			ReasonAmbiguousSelfOutput,
			"outputs",
			fmt.Sprintf("%d outputs carry the credential's own address, expected exactly one", matches),
		)
	}

	return located, nil
}
