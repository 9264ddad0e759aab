// Package txbuild is the chain-agnostic entry point for constructing
// transactions. A caller picks a chain family, populates a builder through
// fluent setters (or ingests JSON), and hands the encoded bytes to the
// external signing service.
package txbuild

import (
	"github.com/pkg/errors"

	"github.com/omnisig/go-txbuilder/internal/txbuild/bitcoin"
	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
)

// Chain-family registry: one builder alias per supported family. Adding a
// family means adding one package satisfying the builder contract and one
// alias plus ingest entry here.
type (
	EVM     = evm.TransactionBuilder
	Bitcoin = bitcoin.TransactionBuilder
)

// New returns a fresh builder for the chosen chain family, e.g.
// txbuild.New[txbuild.EVM]().
func New[B any]() *B {
	return new(B)
}

// Family tags the closed set of supported chain families for runtime
// dispatch (CLI flags, API query params).
type Family string

const (
	FamilyEVM     Family = "evm"
	FamilyBitcoin Family = "bitcoin"
)

// SigningPayload is a finalized chain-specific record that can produce the
// bytes handed to the signing service.
type SigningPayload interface {
	BuildForSigning() []byte
}

var ingestByFamily = map[Family]func(data []byte) (SigningPayload, error){
	FamilyEVM: func(data []byte) (SigningPayload, error) {
		return evm.FromJSON(data)
	},
	FamilyBitcoin: func(data []byte) (SigningPayload, error) {
		return nil, errors.New("bitcoin: JSON ingestion is not supported")
	},
}

// FromJSONForFamily ingests a loosely-typed JSON transaction for the given
// family tag.
func FromJSONForFamily(family Family, data []byte) (SigningPayload, error) {
	ingest, ok := ingestByFamily[family]
	if !ok {
		return nil, errors.Errorf("unknown chain family: %q", family)
	}
	return ingest(data)
}
