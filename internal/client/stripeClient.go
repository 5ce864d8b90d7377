package client

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"

	"voltpad-checkout/internal/config"
)

// --- INTERFACE ---

type StripeClient interface {
	// CreateCheckoutSession requests a hosted one-shot payment page and
	// returns its id and redirect URL.
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResult, error)
}

// CheckoutSessionRequest carries everything the hosted session needs;
// amounts are minor currency units.
type CheckoutSessionRequest struct {
	Email       string
	Plan        string
	ProductName string
	Description string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSessionResult struct {
	SessionID string
	URL       string
}

// --- IMPLEMENTATION ---

type stripeClientImpl struct {
	api *stripeclient.API
}

// NewStripeClient initializes the Stripe SDK with an explicit key, no
// package-level globals.
func NewStripeClient(cfg *config.Stripe) StripeClient {
	api := &stripeclient.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeClientImpl{api: api}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	// opaque metadata for reconciling the webhook/receipt side later
	params.AddMetadata("email", req.Email)
	params.AddMetadata("plan", req.Plan)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &CheckoutSessionResult{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}
