package evm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
)

func TestFlexUint64(t *testing.T) {
	var v evm.FlexUint64

	require.NoError(t, json.Unmarshal([]byte(`66`), &v))
	assert.Equal(t, evm.FlexUint64(66), v)

	require.NoError(t, json.Unmarshal([]byte(`"66"`), &v))
	assert.Equal(t, evm.FlexUint64(66), v)

	// hex is not accepted in the bare scalar form
	require.Error(t, json.Unmarshal([]byte(`"0x42"`), &v))
	require.Error(t, json.Unmarshal([]byte(`-1`), &v))
	require.Error(t, json.Unmarshal([]byte(`true`), &v))
}

func TestFlexUint128(t *testing.T) {
	var v evm.FlexUint128

	require.NoError(t, json.Unmarshal([]byte(`"340282366920938463463374607431768211455"`), &v))
	assert.Equal(t, "340282366920938463463374607431768211455", v.BigInt().String())

	require.NoError(t, json.Unmarshal([]byte(`20000000000`), &v))
	assert.Equal(t, "20000000000", v.BigInt().String())

	// 2^128 is out of range
	require.Error(t, json.Unmarshal([]byte(`"340282366920938463463374607431768211456"`), &v))
	require.Error(t, json.Unmarshal([]byte(`"0x1"`), &v))
	require.Error(t, json.Unmarshal([]byte(`"-5"`), &v))
}
