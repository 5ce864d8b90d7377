package service

import (
	"context"
	"fmt"

	"voltpad-checkout/internal/catalog"
	"voltpad-checkout/internal/client"
	"voltpad-checkout/internal/dto"
)

type CheckoutService interface {
	CreateCardSession(ctx context.Context, req *dto.CardCheckoutRequest) (*dto.CardCheckoutResponse, error)
	CreateWalletOrder(ctx context.Context, req *dto.WalletOrderRequest) (*dto.WalletOrderResponse, error)
	CaptureWalletOrder(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	paypalClient client.PaypalClient
	catalog      *catalog.Catalog
	siteOrigin   string
	brandName    string
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	paypalClient client.PaypalClient,
	cat *catalog.Catalog,
	siteOrigin string,
	brandName string,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		paypalClient: paypalClient,
		catalog:      cat,
		siteOrigin:   siteOrigin,
		brandName:    brandName,
	}
}

// CreateCardSession resolves the plan and asks the card provider for a
// hosted payment page. Nothing is stored; the session id and URL go
// straight back to the caller.
func (s *checkoutServiceImpl) CreateCardSession(ctx context.Context, req *dto.CardCheckoutRequest) (*dto.CardCheckoutResponse, error) {
	product, err := s.catalog.Resolve(catalog.Plan(req.Plan))
	if err != nil {
		return nil, err
	}

	result, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionRequest{
		Email:       req.Email,
		Plan:        req.Plan,
		ProductName: product.Name,
		Description: product.Description,
		AmountCents: product.PriceCents,
		Currency:    product.Currency,
		SuccessURL:  s.siteOrigin + "/checkout/success",
		CancelURL:   s.siteOrigin + "/checkout/cancel",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create card session: %w", ErrVendor, err)
	}

	return &dto.CardCheckoutResponse{
		Success:   true,
		SessionID: result.SessionID,
		URL:       result.URL,
	}, nil
}

// CreateWalletOrder mirrors CreateCardSession for the wallet provider;
// the order is created with capture intent and finalized later by
// CaptureWalletOrder.
func (s *checkoutServiceImpl) CreateWalletOrder(ctx context.Context, req *dto.WalletOrderRequest) (*dto.WalletOrderResponse, error) {
	product, err := s.catalog.Resolve(catalog.Plan(req.Plan))
	if err != nil {
		return nil, err
	}

	orderID, err := s.paypalClient.CreateOrder(ctx, &client.WalletOrderRequest{
		Email:       req.Email,
		Plan:        req.Plan,
		Description: product.Description,
		AmountCents: product.PriceCents,
		Currency:    product.Currency,
		BrandName:   s.brandName,
		SuccessURL:  s.siteOrigin + "/checkout/success",
		CancelURL:   s.siteOrigin + "/checkout/cancel",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create wallet order: %w", ErrVendor, err)
	}

	return &dto.WalletOrderResponse{
		Success: true,
		OrderID: orderID,
	}, nil
}

func (s *checkoutServiceImpl) CaptureWalletOrder(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error) {
	if err := s.paypalClient.CaptureOrder(ctx, req.OrderID); err != nil {
		return nil, fmt.Errorf("%w: capture wallet order: %w", ErrVendor, err)
	}

	return &dto.CaptureResponse{Success: true}, nil
}
