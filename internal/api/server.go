package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/omnisig/go-txbuilder/internal/config"
)

type Router struct {
	Routes            []*echo.Route
	Root              *echo.Group
	Management        *echo.Group
	APIV1Transactions *echo.Group
}

// Server is the central struct keeping the service dependencies together.
// Echo and Router are initialized by router.Init after construction.
type Server struct {
	Config config.Server
	Echo   *echo.Echo
	Router *Router
}

func NewServer(config config.Server) *Server {
	return &Server{
		Config: config,
	}
}

// Ready reports whether all components were initialized.
func (s *Server) Ready() bool {
	return s.Echo != nil && s.Router != nil
}

func (s *Server) Start() error {
	return s.Echo.Start(s.Config.Echo.ListenAddress)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
