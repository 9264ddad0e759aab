package evm

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// FlexUint64 decodes from either a native JSON number or a decimal string.
// Hex strings are not accepted in this bare form; use FromJSON's field rules
// for that. Used for scalar fields that arrive outside a transaction object,
// e.g. the signature v value in API payloads.
type FlexUint64 uint64

func (v *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid u64 string")
		}
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.Errorf("invalid u64 string: %q", s)
		}
		*v = FlexUint64(parsed)
		return nil
	}

	var parsed uint64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return errors.Wrap(err, "expected a u64 or a string representing a u64")
	}
	*v = FlexUint64(parsed)
	return nil
}

// FlexUint128 is the 128-bit counterpart of FlexUint64: a native JSON number
// or a decimal string, range-checked to 128 bits.
type FlexUint128 big.Int

func (v *FlexUint128) UnmarshalJSON(data []byte) error {
	digits := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid u128 string")
		}
		digits = s
	}

	parsed, ok := new(big.Int).SetString(digits, 10)
	if !ok || parsed.Sign() < 0 || parsed.BitLen() > maxUint128Bits {
		return errors.Errorf("invalid u128 value: %q", digits)
	}
	(*big.Int)(v).Set(parsed)
	return nil
}

func (v *FlexUint128) MarshalJSON() ([]byte, error) {
	return json.Marshal((*big.Int)(v).String())
}

// BigInt returns the decoded value.
func (v *FlexUint128) BigInt() *big.Int {
	return (*big.Int)(v)
}
