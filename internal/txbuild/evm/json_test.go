package evm_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
)

func validTxJSON(overrides map[string]interface{}) []byte {
	fields := map[string]interface{}{
		"chainId":              "11155111",
		"nonce":                "1",
		"to":                   "0x525521d79134822a342d330bd91DA67976569aF1",
		"value":                "0x038d7ea4c68000",
		"gasLimit":             "21000",
		"maxFeePerGas":         "0x1",
		"maxPriorityFeePerGas": "0x1",
	}
	for k, v := range overrides {
		if v == nil {
			delete(fields, k)
		} else {
			fields[k] = v
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		panic(err)
	}
	return data
}

func TestFromJSONHexAndDecimalStrings(t *testing.T) {
	tx, err := evm.FromJSON(validTxJSON(nil))
	require.NoError(t, err)

	assert.Equal(t, uint64(11155111), tx.ChainID)
	assert.Equal(t, uint64(1), tx.Nonce)
	require.NotNil(t, tx.To)
	assert.Equal(t, common.HexToAddress("0x525521d79134822a342d330bd91DA67976569aF1"), *tx.To)
	assert.Equal(t, "1000000000000000", tx.Value.String()) // 0x038d7ea4c68000
	assert.Equal(t, "21000", tx.GasLimit.String())
	assert.Equal(t, "1", tx.MaxFeePerGas.String())
	assert.Equal(t, "1", tx.MaxPriorityFeePerGas.String())
	assert.Empty(t, tx.Input)
	assert.Empty(t, tx.AccessList)
}

func TestFromJSONNonceFlexibility(t *testing.T) {
	for _, nonce := range []interface{}{"66", "0x42", 66} {
		tx, err := evm.FromJSON(validTxJSON(map[string]interface{}{"nonce": nonce}))
		require.NoError(t, err, "nonce %v", nonce)
		assert.Equal(t, uint64(66), tx.Nonce, "nonce %v", nonce)
	}
}

func TestFromJSONAddressShapeEquivalence(t *testing.T) {
	addrHex := "0x6069a6c32cf691f5982febae4faf8a6f3ab2f0f6"
	addrBytes := common.HexToAddress(addrHex).Bytes()

	numbers := make([]interface{}, len(addrBytes))
	numberStrings := make([]interface{}, len(addrBytes))
	for i, b := range addrBytes {
		numbers[i] = int(b)
		numberStrings[i] = fmt.Sprintf("%d", b)
	}

	for name, to := range map[string]interface{}{
		"hex string":     addrHex,
		"number array":   numbers,
		"string array":   numberStrings,
	} {
		tx, err := evm.FromJSON(validTxJSON(map[string]interface{}{"to": to}))
		require.NoError(t, err, name)
		require.NotNil(t, tx.To, name)
		assert.Equal(t, common.HexToAddress(addrHex), *tx.To, name)
	}
}

func TestFromJSONContractCreation(t *testing.T) {
	input := "0x6a627842000000000000000000000000525521d79134822a342d330bd91DA67976569aF1"

	// absent `to`
	tx, err := evm.FromJSON(validTxJSON(map[string]interface{}{"to": nil, "input": input}))
	require.NoError(t, err)
	assert.Nil(t, tx.To)
	assert.Equal(t, hexutil.MustDecode(input), tx.Input)

	// explicit null `to`
	tx, err = evm.FromJSON([]byte(`{
		"chainId": "1",
		"nonce": "0",
		"to": null,
		"value": "0",
		"gasLimit": "21000",
		"maxFeePerGas": "1",
		"maxPriorityFeePerGas": "1"
	}`))
	require.NoError(t, err)
	assert.Nil(t, tx.To)
}

func TestFromJSONInputAsByteArray(t *testing.T) {
	tx, err := evm.FromJSON(validTxJSON(map[string]interface{}{"input": []interface{}{1, 2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, tx.Input)
}

func TestFromJSONSnakeCaseFallback(t *testing.T) {
	data := []byte(`{
		"to": "0x525521d79134822a342d330bd91DA67976569aF1",
		"nonce": "0",
		"value": "0",
		"chain_id": "421614",
		"gas_limit": "44386",
		"max_fee_per_gas": "20000000000",
		"max_priority_fee_per_gas": "1000000000"
	}`)

	tx, err := evm.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(421614), tx.ChainID)
	assert.Equal(t, "44386", tx.GasLimit.String())
	assert.Equal(t, "20000000000", tx.MaxFeePerGas.String())
}

func TestFromJSONMissingRequiredFields(t *testing.T) {
	for _, field := range []string{"chainId", "nonce", "value", "gasLimit", "maxFeePerGas", "maxPriorityFeePerGas"} {
		_, err := evm.FromJSON(validTxJSON(map[string]interface{}{field: nil}))
		require.Error(t, err, field)

		var fieldErr *evm.FieldError
		require.ErrorAs(t, err, &fieldErr, field)
		assert.Equal(t, field, fieldErr.Field)
		assert.Contains(t, fieldErr.Reason, "must be provided")
	}
}

func TestFromJSONMalformedNumerics(t *testing.T) {
	cases := map[string]interface{}{
		"nonce":   "not-a-number",
		"value":   "0xzz",
		"chainId": "-1",
	}
	for field, bad := range cases {
		_, err := evm.FromJSON(validTxJSON(map[string]interface{}{field: bad}))
		var fieldErr *evm.FieldError
		require.ErrorAs(t, err, &fieldErr, field)
		assert.Equal(t, field, fieldErr.Field)
	}
}

func TestFromJSONValueOutOfRange(t *testing.T) {
	// 2^128 does not fit u128
	_, err := evm.FromJSON(validTxJSON(map[string]interface{}{"value": "340282366920938463463374607431768211456"}))
	var fieldErr *evm.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "value", fieldErr.Field)
}

func TestFromJSONMalformedAddress(t *testing.T) {
	nineteen := make([]interface{}, 19)
	for i := range nineteen {
		nineteen[i] = 0
	}

	nonNumeric := make([]interface{}, 20)
	for i := range nonNumeric {
		nonNumeric[i] = "0"
	}
	nonNumeric[7] = "banana"

	mixed := make([]interface{}, 20)
	for i := range mixed {
		mixed[i] = 0
	}
	mixed[3] = "12"

	cases := map[string]interface{}{
		"wrong length":       nineteen,
		"non-numeric string": nonNumeric,
		"mixed types":        mixed,
		"bad hex":            "0x1234",
		"no prefix":          "525521d79134822a342d330bd91DA67976569aF1",
	}

	for name, to := range cases {
		_, err := evm.FromJSON(validTxJSON(map[string]interface{}{"to": to}))
		require.Error(t, err, name)

		var fieldErr *evm.FieldError
		require.True(t, errors.As(err, &fieldErr), name)
		assert.Equal(t, "to", fieldErr.Field, name)
	}
}

func TestFromJSONAccessListIsNeverRead(t *testing.T) {
	data := []byte(`{
		"chainId": "1",
		"nonce": "0",
		"to": "0x525521d79134822a342d330bd91DA67976569aF1",
		"value": "0",
		"gasLimit": "21000",
		"maxFeePerGas": "1",
		"maxPriorityFeePerGas": "1",
		"accessList": [["0x525521d79134822a342d330bd91DA67976569aF1", []]]
	}`)

	tx, err := evm.FromJSON(data)
	require.NoError(t, err)
	assert.Empty(t, tx.AccessList)
}

func TestFromJSONUnknownKeysIgnored(t *testing.T) {
	tx, err := evm.FromJSON(validTxJSON(map[string]interface{}{"from": "0x0000000000000000000000000000000000000000", "gas": "1"}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tx.Nonce)
}

func TestFromJSONNotAnObject(t *testing.T) {
	_, err := evm.FromJSON([]byte(`[1,2,3]`))
	require.Error(t, err)
}
