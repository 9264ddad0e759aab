// Package near holds the byte-vector wrapper used by the NEAR ledger's
// persisted binary fields. It is consumed as an opaque field type by that
// family's records, not produced by this core.
package near

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// Base64Bytes is a byte vector that marshals to a standard base64 string in
// JSON and stays raw bytes everywhere else.
type Base64Bytes []byte

func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "expected a base64 string")
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "invalid base64 string")
	}
	*b = decoded
	return nil
}
