package dto

import "strings"

// CardCheckoutRequest creates a hosted card-checkout session. Email is
// required here; the card provider attaches it to the session.
type CardCheckoutRequest struct {
	Email string `json:"email" validate:"required,email"`
	Plan  string `json:"plan" validate:"required,oneof=premium pro enterprise"`
}

// WalletOrderRequest creates a wallet order. Email is optional and only
// embedded for later reconciliation.
type WalletOrderRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Plan  string `json:"plan" validate:"required,oneof=premium pro enterprise"`
}

// CaptureRequest finalizes a previously created wallet order.
type CaptureRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// Normalize trims and lowercases the email and applies the plan default.
// Runs before validation so the validated values are the ones used.
func (r *CardCheckoutRequest) Normalize(defaultPlan string) {
	r.Email = normalizeEmail(r.Email)
	if r.Plan == "" {
		r.Plan = defaultPlan
	}
}

func (r *WalletOrderRequest) Normalize(defaultPlan string) {
	r.Email = normalizeEmail(r.Email)
	if r.Plan == "" {
		r.Plan = defaultPlan
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type CardCheckoutResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type WalletOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type CaptureResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
