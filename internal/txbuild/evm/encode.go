package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
)

// DynamicFeeTxType is the EIP-2718 type byte prefixed to every EIP-1559
// payload, before the RLP list.
const DynamicFeeTxType = byte(0x02)

// BuildForSigning serializes the record into the exact byte sequence whose
// keccak digest is signed: the type byte followed by one RLP list of the nine
// EIP-1559 fields. Encoding is deterministic and cannot fail on a well-formed
// record.
func (tx *Transaction) BuildForSigning() []byte {
	w := rlp.NewEncoderBuffer(nil)

	outer := w.List()
	tx.encodeFields(w)
	w.ListEnd(outer)

	return append([]byte{DynamicFeeTxType}, w.ToBytes()...)
}

// BuildWithSignature serializes the record ready for broadcast: the same
// field list as BuildForSigning with v, r and s appended inside the outer
// list. v is encoded as a minimal integer; r and s are written as raw byte
// strings, preserving whatever length the signer supplied.
func (tx *Transaction) BuildWithSignature(sig *Signature) []byte {
	w := rlp.NewEncoderBuffer(nil)

	outer := w.List()
	tx.encodeFields(w)
	w.WriteUint64(sig.V)
	w.WriteBytes(sig.R)
	w.WriteBytes(sig.S)
	w.ListEnd(outer)

	return append([]byte{DynamicFeeTxType}, w.ToBytes()...)
}

// encodeFields writes the nine EIP-1559 fields in consensus order. Integers
// are minimal big-endian (zero is the empty string), a nil `to` encodes as an
// empty byte string to mark contract creation, and the access list is a
// nested list of [address, [storageKey, ...]] pairs.
func (tx *Transaction) encodeFields(w rlp.EncoderBuffer) {
	w.WriteUint64(tx.ChainID)
	w.WriteUint64(tx.Nonce)
	writeBigInt(w, tx.MaxPriorityFeePerGas)
	writeBigInt(w, tx.MaxFeePerGas)
	writeBigInt(w, tx.GasLimit)
	if tx.To != nil {
		w.WriteBytes(tx.To.Bytes())
	} else {
		w.WriteBytes(nil)
	}
	writeBigInt(w, tx.Value)
	w.WriteBytes(tx.Input)

	accessList := w.List()
	for _, tuple := range tx.AccessList {
		entry := w.List()
		w.WriteBytes(tuple.Address.Bytes())
		keys := w.List()
		for _, key := range tuple.StorageKeys {
			w.WriteBytes(key.Bytes())
		}
		w.ListEnd(keys)
		w.ListEnd(entry)
	}
	w.ListEnd(accessList)
}

func writeBigInt(w rlp.EncoderBuffer, i *big.Int) {
	if i == nil {
		w.WriteUint64(0)
		return
	}
	w.WriteBigInt(i)
}
