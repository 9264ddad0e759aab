package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/api/handlers"
	"github.com/omnisig/go-txbuilder/internal/api/httperrors"
	"github.com/omnisig/go-txbuilder/internal/types"
	"github.com/omnisig/go-txbuilder/internal/util"
)

// Init attaches middleware, the error handler and all routes to the server.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = errorHandler(s)

	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(loggerMiddleware())

	s.Router = &api.Router{
		Routes:            nil, // filled by handlers.AttachAllRoutes
		Root:              s.Echo.Group(""),
		Management:        s.Echo.Group("/-"),
		APIV1Transactions: s.Echo.Group("/api/v1/transactions"),
	}

	handlers.AttachAllRoutes(s)
}

// loggerMiddleware attaches a request-scoped zerolog logger to the context
// and emits one line per request.
func loggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			l := log.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			c.SetRequest(req.WithContext(util.WithLogger(req.Context(), &l)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.Debug().Int("status", c.Response().Status).Msg("Request handled")

			return nil
		}
	}
}

// errorHandler renders typed httperrors as their public JSON shape and wraps
// everything else into a generic error, optionally hiding internals.
func errorHandler(s *api.Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var payload interface{}

		switch e := err.(type) {
		case *httperrors.HTTPValidationError:
			code = int(*e.Code)
			payload = e
		case *httperrors.HTTPError:
			code = int(*e.Code)
			payload = e
		case *echo.HTTPError:
			code = e.Code
			he := httperrors.NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, http.StatusText(e.Code))
			if !s.Config.Echo.HideInternalServerErrorDetails {
				he.Detail = err.Error()
			}
			payload = he
		default:
			code = http.StatusInternalServerError
			he := httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !s.Config.Echo.HideInternalServerErrorDetails {
				he.Detail = err.Error()
			}
			payload = he
		}

		if writeErr := c.JSON(code, payload); writeErr != nil {
			util.LogFromContext(c.Request().Context()).Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
