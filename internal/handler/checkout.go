package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"voltpad-checkout/internal/catalog"
	"voltpad-checkout/internal/dto"
	"voltpad-checkout/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	log             zerolog.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, log zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

// CreateCardSession handles POST /api/checkout/session.
func (h *CheckoutHandler) CreateCardSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CardCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.Normalize(string(catalog.DefaultPlan))
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.CreateCardSession(ctx, &req)
	if err != nil {
		return h.mapServiceError(c, "create card session", err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateWalletOrder handles POST /api/paypal/order.
func (h *CheckoutHandler) CreateWalletOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.WalletOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.Normalize(string(catalog.DefaultPlan))
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.CreateWalletOrder(ctx, &req)
	if err != nil {
		return h.mapServiceError(c, "create wallet order", err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CaptureWalletOrder handles POST /api/paypal/capture.
func (h *CheckoutHandler) CaptureWalletOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CaptureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.CaptureWalletOrder(ctx, &req)
	if err != nil {
		return h.mapServiceError(c, "capture wallet order", err)
	}

	return c.JSON(http.StatusOK, resp)
}

// mapServiceError translates the service taxonomy into HTTP errors.
// Vendor detail is logged here and never reaches the response body.
func (h *CheckoutHandler) mapServiceError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrPlanNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, "unknown value in field: plan")
	case errors.Is(err, service.ErrVendor):
		h.log.Error().
			Err(err).
			Str("op", op).
			Str("path", c.Path()).
			Msg("payment provider call failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	default:
		h.log.Error().
			Err(err).
			Str("op", op).
			Str("path", c.Path()).
			Msg("unexpected checkout error")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
