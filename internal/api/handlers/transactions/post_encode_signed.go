package transactions

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/api/httperrors"
	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
	"github.com/omnisig/go-txbuilder/internal/types"
	"github.com/omnisig/go-txbuilder/internal/util"
)

func PostEncodeSignedRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Transactions.POST("/encode-signed", postEncodeSignedHandler(s))
}

// postEncodeSignedHandler re-serializes a transaction with the signature
// material returned by the signing service, yielding the broadcast-ready raw
// transaction. EVM only.
func postEncodeSignedHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostEncodeSignedPayload
		if err := c.Bind(&body); err != nil {
			return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid request body", err.Error())
		}

		if body.Transaction == nil {
			return validationError("transaction", "must be provided")
		}
		if body.Signature == nil {
			return validationError("signature", "must be provided")
		}

		r, err := hexutil.Decode(swag.StringValue(body.Signature.R))
		if err != nil {
			return validationError("signature.r", "expected a 0x-prefixed hex byte string")
		}
		s, err := hexutil.Decode(swag.StringValue(body.Signature.S))
		if err != nil {
			return validationError("signature.s", "expected a 0x-prefixed hex byte string")
		}

		tx, err := evm.FromJSON(body.Transaction)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to ingest transaction")
			return ingestionError(err)
		}

		raw := tx.BuildWithSignature(&evm.Signature{
			V: uint64(body.Signature.V),
			R: r,
			S: s,
		})

		return c.JSON(http.StatusOK, &types.PostEncodeSignedResponse{
			RawTransaction: swag.String(hexutil.Encode(raw)),
		})
	}
}

func validationError(key string, reason string) error {
	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.PublicHTTPErrorTypeGeneric,
		"Invalid request",
		[]*types.HTTPValidationErrorDetail{
			{
				Key:   swag.String(key),
				In:    swag.String("body"),
				Error: swag.String(reason),
			},
		},
	)
}
