package transactions_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/test"
	"github.com/omnisig/go-txbuilder/internal/types"
)

const transferTxJSON = `{
	"chainId": "1",
	"nonce": "0",
	"to": "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	"value": "10000000000000000",
	"gasLimit": "21000",
	"maxFeePerGas": "20000000000",
	"maxPriorityFeePerGas": "1000000000"
}`

func TestPostBuildTransaction(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/transactions/build", transferTxJSON, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.PostBuildTransactionResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t,
			"0x02ef0180843b9aca008504a817c80082520894d8da6bf26964af9d7eed9e03e53415d37aa96045872386f26fc1000080c0",
			swag.StringValue(response.SigningPayload),
		)
		assert.Len(t, swag.StringValue(response.PayloadHash), 2+64)
	})
}

func TestPostBuildTransactionMissingField(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		body := `{
			"chainId": "1",
			"to": "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			"value": "0",
			"gasLimit": "21000",
			"maxFeePerGas": "1",
			"maxPriorityFeePerGas": "1"
		}`

		res := test.PerformRequest(t, s, "POST", "/api/v1/transactions/build", body, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseBody(t, res, &response)

		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "nonce", swag.StringValue(response.ValidationErrors[0].Key))
	})
}

func TestPostBuildTransactionUnknownFamily(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/transactions/build?family=solana", transferTxJSON, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
