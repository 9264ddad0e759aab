package transactions

import (
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/api/httperrors"
	"github.com/omnisig/go-txbuilder/internal/txbuild"
	"github.com/omnisig/go-txbuilder/internal/txbuild/evm"
	"github.com/omnisig/go-txbuilder/internal/types"
	"github.com/omnisig/go-txbuilder/internal/util"
)

func PostBuildTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Transactions.POST("/build", postBuildTransactionHandler(s))
}

// postBuildTransactionHandler ingests a loosely-typed transaction JSON body
// and returns the signing payload plus its keccak digest. The chain family
// defaults to evm and can be overridden with the `family` query param.
func postBuildTransactionHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		family := txbuild.FamilyEVM
		if f := c.QueryParam("family"); f != "" {
			family = txbuild.Family(f)
		}

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return errors.Wrap(err, "failed to read request body")
		}

		tx, err := txbuild.FromJSONForFamily(family, body)
		if err != nil {
			log.Debug().Err(err).Str("family", string(family)).Msg("Failed to ingest transaction")
			return ingestionError(err)
		}

		payload := tx.BuildForSigning()
		hash := crypto.Keccak256(payload)

		return c.JSON(http.StatusOK, &types.PostBuildTransactionResponse{
			SigningPayload: swag.String(hexutil.Encode(payload)),
			PayloadHash:    swag.String(hexutil.Encode(hash)),
		})
	}
}

// ingestionError maps a field-named ingestion failure to a 400 validation
// error; everything else becomes a generic 400.
func ingestionError(err error) error {
	var fieldErr *evm.FieldError
	if errors.As(err, &fieldErr) {
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Invalid transaction",
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String(fieldErr.Field),
					In:    swag.String("body"),
					Error: swag.String(fieldErr.Reason),
				},
			},
		)
	}

	return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid transaction", err.Error())
}
