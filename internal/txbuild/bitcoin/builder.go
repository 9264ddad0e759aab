// Package bitcoin carries the Bitcoin chain-family builder. Only the builder
// surface and the sighash tag live in this core; sighash computation and
// script handling belong to the signing collaborator.
package bitcoin

// Transaction is the canonical record for the Bitcoin family.
type Transaction struct {
	Version     int32
	LockTime    uint32
	SighashType EcdsaSighashType
}

// TransactionBuilder mirrors the EVM builder contract for the Bitcoin
// family. The zero value is ready to use.
type TransactionBuilder struct {
	tx Transaction
}

func (b *TransactionBuilder) Version(version int32) *TransactionBuilder {
	b.tx.Version = version
	return b
}

func (b *TransactionBuilder) LockTime(lockTime uint32) *TransactionBuilder {
	b.tx.LockTime = lockTime
	return b
}

func (b *TransactionBuilder) SighashType(sighashType EcdsaSighashType) *TransactionBuilder {
	b.tx.SighashType = sighashType
	return b
}

// Build finalizes the record.
func (b *TransactionBuilder) Build() *Transaction {
	tx := b.tx
	return &tx
}
