package evm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const maxUint128Bits = 128

// FieldError reports a missing or malformed transaction field. Every
// ingestion failure carries the JSON field name so callers can surface it
// without parsing error strings.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func newFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// FromJSON builds a canonical transaction record from a loosely-typed JSON
// object. It is a pure transform: either a complete record is returned or a
// *FieldError naming the offending field, never a partial record.
//
// Accepted value shapes:
//   - chainId, nonce: decimal string, 0x-hex string or JSON number (u64)
//   - value, gasLimit, maxFeePerGas, maxPriorityFeePerGas: same forms (u128)
//   - to: null/absent, 0x-prefixed 40-hex string, array of 20 byte values or
//     array of 20 decimal strings
//   - input: 0x-prefixed hex string or array of byte values; absent is empty
//
// Keys are camelCase with a snake_case fallback; unrecognized keys are
// ignored. The access list is never read from JSON and is always empty; the
// builder setter is the only way to populate it.
func FromJSON(data []byte) (*Transaction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "transaction must be a JSON object")
	}

	pick := func(names ...string) json.RawMessage {
		for _, name := range names {
			if raw, ok := fields[name]; ok && !isJSONNull(raw) {
				return raw
			}
		}
		return nil
	}

	chainID, err := requiredUint64(pick("chainId", "chain_id"), "chainId")
	if err != nil {
		return nil, err
	}
	nonce, err := requiredUint64(pick("nonce"), "nonce")
	if err != nil {
		return nil, err
	}
	value, err := requiredUint128(pick("value"), "value")
	if err != nil {
		return nil, err
	}
	gasLimit, err := requiredUint128(pick("gasLimit", "gas_limit"), "gasLimit")
	if err != nil {
		return nil, err
	}
	maxFeePerGas, err := requiredUint128(pick("maxFeePerGas", "max_fee_per_gas"), "maxFeePerGas")
	if err != nil {
		return nil, err
	}
	maxPriorityFeePerGas, err := requiredUint128(pick("maxPriorityFeePerGas", "max_priority_fee_per_gas"), "maxPriorityFeePerGas")
	if err != nil {
		return nil, err
	}

	to, err := parseAddress(fields["to"], "to")
	if err != nil {
		return nil, err
	}

	input, err := parseInput(pick("input", "data"), "input")
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ChainID:              chainID,
		Nonce:                nonce,
		To:                   to,
		Value:                value,
		Input:                input,
		GasLimit:             gasLimit,
		MaxFeePerGas:         maxFeePerGas,
		MaxPriorityFeePerGas: maxPriorityFeePerGas,
		AccessList:           AccessList{},
	}, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// requiredUint64 parses a u64 given as a JSON number, decimal string or
// 0x-hex string.
func requiredUint64(raw json.RawMessage, field string) (uint64, error) {
	s, err := scalarString(raw, field)
	if err != nil {
		return 0, err
	}
	v, err := parseUint64(s)
	if err != nil {
		return 0, newFieldError(field, "%q is not a valid u64", s)
	}
	return v, nil
}

// requiredUint128 parses an unsigned value fitting 128 bits, given as a JSON
// number, decimal string or 0x-hex string.
func requiredUint128(raw json.RawMessage, field string) (*big.Int, error) {
	s, err := scalarString(raw, field)
	if err != nil {
		return nil, err
	}
	v, err := parseUint128(s)
	if err != nil {
		return nil, newFieldError(field, "%q is not a valid u128", s)
	}
	return v, nil
}

// scalarString normalizes a required numeric field to its string form.
func scalarString(raw json.RawMessage, field string) (string, error) {
	if raw == nil {
		return "", newFieldError(field, "must be provided")
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", newFieldError(field, "invalid string value")
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", newFieldError(field, "expected a number or a numeric string")
	}
	return n.String(), nil
}

func parseUint64(s string) (uint64, error) {
	if hexStr, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(hexStr, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func parseUint128(s string) (*big.Int, error) {
	base := 10
	digits := s
	if hexStr, ok := strings.CutPrefix(s, "0x"); ok {
		base = 16
		digits = hexStr
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid base-%d integer", base)
	}
	if v.Sign() < 0 || v.BitLen() > maxUint128Bits {
		return nil, errors.New("out of u128 range")
	}
	return v, nil
}

// parseAddress accepts the three legal encodings of a 20-byte address plus
// null/absent for contract creation. All three must yield the identical
// canonical value.
func parseAddress(raw json.RawMessage, field string) (*common.Address, error) {
	if raw == nil || isJSONNull(raw) {
		return nil, nil
	}

	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, newFieldError(field, "invalid string value")
		}
		decoded, err := hexutil.Decode(s)
		if err != nil || len(decoded) != common.AddressLength {
			return nil, newFieldError(field, "expected a 0x-prefixed 40-hex-character address, got %q", s)
		}
		addr := common.BytesToAddress(decoded)
		return &addr, nil

	case len(trimmed) > 0 && trimmed[0] == '[':
		decoded, err := parseByteArray(trimmed, field, common.AddressLength)
		if err != nil {
			return nil, err
		}
		addr := common.BytesToAddress(decoded)
		return &addr, nil

	default:
		return nil, newFieldError(field, "expected null, a hex string or an array of 20 bytes")
	}
}

// parseByteArray decodes an array of byte values given either as numbers or
// as decimal strings. Mixed element types are rejected. wantLen of 0 means
// any length.
func parseByteArray(raw json.RawMessage, field string, wantLen int) ([]byte, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, newFieldError(field, "invalid array value")
	}
	if wantLen > 0 && len(elems) != wantLen {
		return nil, newFieldError(field, "expected %d-byte array, got length %d", wantLen, len(elems))
	}
	if len(elems) == 0 {
		return []byte{}, nil
	}

	asStrings := bytes.TrimSpace(elems[0])[0] == '"'
	out := make([]byte, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		isString := len(elem) > 0 && elem[0] == '"'
		if isString != asStrings {
			return nil, newFieldError(field, "mixed element types, expected all numbers or all decimal strings")
		}

		var digits string
		if isString {
			if err := json.Unmarshal(elem, &digits); err != nil {
				return nil, newFieldError(field, "invalid element at index %d", i)
			}
			digits = strings.TrimSpace(digits)
		} else {
			digits = string(elem)
		}

		b, err := strconv.ParseUint(digits, 10, 8)
		if err != nil {
			return nil, newFieldError(field, "element %q at index %d is not a byte value", digits, i)
		}
		out[i] = byte(b)
	}
	return out, nil
}

// parseInput decodes call data from a 0x-prefixed hex string or a byte
// array. Absent means empty call data.
func parseInput(raw json.RawMessage, field string) ([]byte, error) {
	if raw == nil {
		return []byte{}, nil
	}

	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, newFieldError(field, "invalid string value")
		}
		if s == "" {
			return []byte{}, nil
		}
		decoded, err := hexutil.Decode(s)
		if err != nil {
			return nil, newFieldError(field, "expected 0x-prefixed hex call data, got %q", s)
		}
		return decoded, nil

	case len(trimmed) > 0 && trimmed[0] == '[':
		return parseByteArray(trimmed, field, 0)

	default:
		return nil, newFieldError(field, "expected a hex string or an array of bytes")
	}
}
