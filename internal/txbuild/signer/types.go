// Package signer defines the boundary types exchanged with the external
// signing service. The service itself, and the mapping from its curve-point
// response to a v/r/s triple, are outside this core.
package signer

// SignRequest is the payload handed to the signing service: the 32-byte
// digest of a signing payload, the key-derivation path and the key version.
type SignRequest struct {
	Payload    [32]byte `json:"payload"`
	Path       string   `json:"path"`
	KeyVersion uint32   `json:"key_version"`
}

// SerializableAffinePoint is an elliptic-curve point as an opaque string.
type SerializableAffinePoint struct {
	AffinePoint string `json:"affine_point"`
}

// SerializableScalar is a curve scalar as an opaque string.
type SerializableScalar struct {
	Scalar string `json:"scalar"`
}

// SignatureResponse is the signing service's answer. Extracting v/r/s from
// the point and scalar is delegated to the cryptography collaborator.
type SignatureResponse struct {
	BigR       SerializableAffinePoint `json:"big_r"`
	S          SerializableScalar      `json:"s"`
	RecoveryID uint8                   `json:"recovery_id"`
}
