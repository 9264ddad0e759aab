package evm

// Signature is the secp256k1 signature material appended to a signed
// transaction payload. It is produced by the external signing service and
// only consumed here.
//
// V is the parity/recovery value and is encoded as a minimal integer. R and S
// are opaque big-endian byte strings and are passed through exactly as
// supplied, leading zero bytes included; no 32-byte length is enforced.
// Callers handing over short or padded scalars get them encoded verbatim,
// which may not match what other tooling expects.
type Signature struct {
	V uint64
	R []byte
	S []byte
}
