package types

import (
	"encoding/json"

	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
)

// PostBuildTransactionResponse carries the signing payload for one
// transaction plus its keccak digest, both 0x-hex encoded.
type PostBuildTransactionResponse struct {
	SigningPayload *string `json:"signingPayload"`
	PayloadHash    *string `json:"payloadHash"`
}

// SignaturePayload is the v/r/s triple as supplied by the caller after the
// signing service responded. R and S are 0x-hex byte strings passed through
// verbatim into the encoding.
type SignaturePayload struct {
	V evm.FlexUint64 `json:"v"`
	R *string        `json:"r"`
	S *string        `json:"s"`
}

// PostEncodeSignedPayload wraps the flexible transaction JSON together with
// the signature material.
type PostEncodeSignedPayload struct {
	Transaction json.RawMessage   `json:"transaction"`
	Signature   *SignaturePayload `json:"signature"`
}

// PostEncodeSignedResponse carries the broadcast-ready raw transaction,
// 0x-hex encoded.
type PostEncodeSignedResponse struct {
	RawTransaction *string `json:"rawTransaction"`
}
