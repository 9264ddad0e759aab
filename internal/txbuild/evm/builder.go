package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionBuilder populates a canonical record through chained setters.
// The zero value is ready to use. Build returns a fresh record, so a builder
// can keep being mutated without affecting anything already built.
type TransactionBuilder struct {
	tx Transaction
}

func (b *TransactionBuilder) ChainID(chainID uint64) *TransactionBuilder {
	b.tx.ChainID = chainID
	return b
}

func (b *TransactionBuilder) Nonce(nonce uint64) *TransactionBuilder {
	b.tx.Nonce = nonce
	return b
}

// To sets the recipient; pass nil for contract creation.
func (b *TransactionBuilder) To(to *common.Address) *TransactionBuilder {
	b.tx.To = to
	return b
}

func (b *TransactionBuilder) Value(value *big.Int) *TransactionBuilder {
	b.tx.Value = value
	return b
}

func (b *TransactionBuilder) Input(input []byte) *TransactionBuilder {
	b.tx.Input = input
	return b
}

func (b *TransactionBuilder) GasLimit(gasLimit *big.Int) *TransactionBuilder {
	b.tx.GasLimit = gasLimit
	return b
}

func (b *TransactionBuilder) MaxFeePerGas(maxFeePerGas *big.Int) *TransactionBuilder {
	b.tx.MaxFeePerGas = maxFeePerGas
	return b
}

func (b *TransactionBuilder) MaxPriorityFeePerGas(maxPriorityFeePerGas *big.Int) *TransactionBuilder {
	b.tx.MaxPriorityFeePerGas = maxPriorityFeePerGas
	return b
}

func (b *TransactionBuilder) AccessList(accessList AccessList) *TransactionBuilder {
	b.tx.AccessList = accessList
	return b
}

// Build finalizes the record.
func (b *TransactionBuilder) Build() *Transaction {
	tx := b.tx
	return &tx
}
