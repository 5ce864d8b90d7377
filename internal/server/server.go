package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"voltpad-checkout/internal/dto"
	"voltpad-checkout/internal/handler"
	"voltpad-checkout/internal/service"
	"voltpad-checkout/internal/validation"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
}

func NewServer(checkoutService service.CheckoutService, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = validation.New()
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, log),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- card checkout --------
	api.POST("/checkout/session", s.checkoutHandler.CreateCardSession)

	// -------- wallet checkout --------
	paypal := api.Group("/paypal")
	paypal.POST("/order", s.checkoutHandler.CreateWalletOrder)
	paypal.POST("/capture", s.checkoutHandler.CaptureWalletOrder)
}

// errorHandler rewrites every HTTP error, echo's own 404/405 included,
// into the fixed {"error": message} envelope.
func errorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, isString := he.Message.(string); isString {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		if writeErr := c.JSON(code, dto.ErrorResponse{Error: msg}); writeErr != nil {
			log.Error().Err(writeErr).Msg("write error response")
		}
	}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
