package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AccessTuple is one access-list entry: an address plus the storage slots the
// transaction pre-declares it will touch.
type AccessTuple struct {
	Address     common.Address
	StorageKeys []common.Hash
}

// AccessList is an ordered list of access tuples. An empty list is a valid
// value and encodes differently from a missing `to` field, so it is kept
// distinct from nil only by convention; both encode as an empty RLP list.
type AccessList []AccessTuple

// Transaction is the canonical record for an EIP-1559 (type 0x02) transaction.
//
// It carries no behavior beyond encoding (see encode.go). The record is
// treated as immutable once built: neither BuildForSigning nor
// BuildWithSignature mutates it, and callers that need a variant must
// construct a new record. All wide numeric fields hold unsigned values that
// fit 128 bits; FromJSON enforces that, a record built by hand is the
// caller's responsibility.
type Transaction struct {
	ChainID uint64
	Nonce   uint64
	// To is nil for contract creation.
	To                   *common.Address
	Value                *big.Int
	Input                []byte
	GasLimit             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	AccessList           AccessList
}
