package bitcoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omnisig/go-txbuilder/internal/txbuild/bitcoin"
)

func TestSighashAllValue(t *testing.T) {
	assert.Equal(t, bitcoin.EcdsaSighashType(0x01), bitcoin.SighashAll)
}

func TestTransactionBuilder(t *testing.T) {
	tx := new(bitcoin.TransactionBuilder).
		Version(2).
		LockTime(500_000).
		SighashType(bitcoin.SighashAll).
		Build()

	assert.Equal(t, int32(2), tx.Version)
	assert.Equal(t, uint32(500_000), tx.LockTime)
	assert.Equal(t, bitcoin.SighashAll, tx.SighashType)
}
