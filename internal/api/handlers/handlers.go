// Package handlers wires every route group to the server. Add new handler
// files as <verb>_<name>.go in the area's package and register the route
// here.
package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/api/handlers/common"
	"github.com/omnisig/go-txbuilder/internal/api/handlers/transactions"
)

func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		transactions.PostBuildTransactionRoute(s),
		transactions.PostEncodeSignedRoute(s),
	}
}
