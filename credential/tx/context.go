package tx

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrSelfInputNotFound is returned by SelfInput when the self reference does
// not resolve to any input of the transaction. This is a structural defect in
// the supplied view, not a governance rejection.
var ErrSelfInputNotFound = errors.New("self input reference not found among transaction inputs")

// OutputReference identifies a transaction output by producing transaction
// and index.
type OutputReference struct {
	TxID  []byte `json:"txId"`
	Index uint32 `json:"index"`
}

// Equal reports whether two references identify the same output.
func (r OutputReference) Equal(other OutputReference) bool {
	return r.Index == other.Index && bytes.Equal(r.TxID, other.TxID)
}

// String renders the reference in txid#index form.
func (r OutputReference) String() string {
	return fmt.Sprintf("%x#%d", r.TxID, r.Index)
}

// Output is a transaction output: an address, the value it carries, the
// locked state attached to it (nil when the output carries none), and an
// optional reference script.
type Output struct {
	Address         []byte       `json:"address"`
	Value           Value        `json:"value"`
	Datum           *LockedState `json:"datum,omitempty"`
	ReferenceScript []byte       `json:"referenceScript,omitempty"`
}

// Clone returns a deep copy of the output.
func (o Output) Clone() Output {
	return Output{
		Address:         bytes.Clone(o.Address),
		Value:           o.Value.Clone(),
		Datum:           o.Datum.Clone(),
		ReferenceScript: bytes.Clone(o.ReferenceScript),
	}
}

// Input pairs an output reference with the output it spends.
type Input struct {
	Reference OutputReference `json:"reference"`
	Output    Output          `json:"output"`
}

// Certificate is an opaque certificate record attached to the transaction.
// The validator never inspects certificate contents, only their presence.
type Certificate struct {
	Kind string `json:"kind"`
	Raw  []byte `json:"raw"`
}

// Vote is an opaque vote record attached to the transaction.
type Vote struct {
	Kind string `json:"kind"`
	Raw  []byte `json:"raw"`
}

// ContextInput carries everything needed to build a Context.
type ContextInput struct {
	Inputs        []Input
	Outputs       []Output
	Signatories   [][]byte
	Certificates  []Certificate
	Votes         []Vote
	SelfReference OutputReference
}

// Context is the immutable, read-only view of a proposed transaction.
// Build it once with NewContext; there are no mutation operations.
type Context struct {
	inputs       []Input
	outputs      []Output
	signatories  [][]byte
	signatorySet map[string]struct{}
	certificates []Certificate
	votes        []Vote
	selfRef      OutputReference
}

// NewContext builds an immutable transaction view. Every sequence is
// deep-copied so later mutation of the caller's slices cannot reach the view.
func NewContext(in ContextInput) *Context {
	c := &Context{
		inputs:       make([]Input, len(in.Inputs)),
		outputs:      make([]Output, len(in.Outputs)),
		signatories:  make([][]byte, len(in.Signatories)),
		signatorySet: make(map[string]struct{}, len(in.Signatories)),
		certificates: make([]Certificate, len(in.Certificates)),
		votes:        make([]Vote, len(in.Votes)),
		selfRef: OutputReference{
			TxID:  bytes.Clone(in.SelfReference.TxID),
			Index: in.SelfReference.Index,
		},
	}

	for i, input := range in.Inputs {
		c.inputs[i] = Input{
			Reference: OutputReference{TxID: bytes.Clone(input.Reference.TxID), Index: input.Reference.Index},
			Output:    input.Output.Clone(),
		}
	}

	for i, output := range in.Outputs {
		c.outputs[i] = output.Clone()
	}

	for i, signatory := range in.Signatories {
		c.signatories[i] = bytes.Clone(signatory)
		c.signatorySet[string(signatory)] = struct{}{}
	}

	for i, certificate := range in.Certificates {
		c.certificates[i] = Certificate{Kind: certificate.Kind, Raw: bytes.Clone(certificate.Raw)}
	}

	for i, vote := range in.Votes {
		c.votes[i] = Vote{Kind: vote.Kind, Raw: bytes.Clone(vote.Raw)}
	}

	return c
}

// Inputs returns a copy of the transaction inputs.
func (c *Context) Inputs() []Input {
	inputs := make([]Input, len(c.inputs))
	for i, input := range c.inputs {
		inputs[i] = Input{
			Reference: OutputReference{TxID: bytes.Clone(input.Reference.TxID), Index: input.Reference.Index},
			Output:    input.Output.Clone(),
		}
	}

	return inputs
}

// Outputs returns a copy of the transaction outputs, in ledger order.
func (c *Context) Outputs() []Output {
	outputs := make([]Output, len(c.outputs))
	for i, output := range c.outputs {
		outputs[i] = output.Clone()
	}

	return outputs
}

// Signatories returns a copy of the key hashes that signed the transaction.
func (c *Context) Signatories() [][]byte {
	signatories := make([][]byte, len(c.signatories))
	for i, signatory := range c.signatories {
		signatories[i] = bytes.Clone(signatory)
	}

	return signatories
}

// SignedBy reports whether the transaction was signed by the key hash.
func (c *Context) SignedBy(keyHash []byte) bool {
	_, ok := c.signatorySet[string(keyHash)]
	return ok
}

// Certificates returns a copy of the attached certificate records.
func (c *Context) Certificates() []Certificate {
	certificates := make([]Certificate, len(c.certificates))
	for i, certificate := range c.certificates {
		certificates[i] = Certificate{Kind: certificate.Kind, Raw: bytes.Clone(certificate.Raw)}
	}

	return certificates
}

// Votes returns a copy of the attached vote records.
func (c *Context) Votes() []Vote {
	votes := make([]Vote, len(c.votes))
	for i, vote := range c.votes {
		votes[i] = Vote{Kind: vote.Kind, Raw: bytes.Clone(vote.Raw)}
	}

	return votes
}

// SelfReference returns the reference identifying this credential's input.
func (c *Context) SelfReference() OutputReference {
	return OutputReference{TxID: bytes.Clone(c.selfRef.TxID), Index: c.selfRef.Index}
}

// SelfInput resolves the self reference against the transaction inputs.
// Returns ErrSelfInputNotFound when the reference resolves to no input.
func (c *Context) SelfInput() (Input, error) {
	for _, input := range c.inputs {
		if input.Reference.Equal(c.selfRef) {
			return Input{
				Reference: OutputReference{TxID: bytes.Clone(input.Reference.TxID), Index: input.Reference.Index},
				Output:    input.Output.Clone(),
			}, nil
		}
	}

	return Input{}, fmt.Errorf("%w: %s", ErrSelfInputNotFound, c.selfRef)
}
