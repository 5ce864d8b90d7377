package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltpad-checkout/internal/catalog"
	"voltpad-checkout/internal/client"
	"voltpad-checkout/internal/config"
	"voltpad-checkout/internal/dto"
)

// MockStripeClient implements client.StripeClient for testing
type MockStripeClient struct {
	gotReq *client.CheckoutSessionRequest
	result *client.CheckoutSessionResult
	err    error
	calls  int
}

func (m *MockStripeClient) CreateCheckoutSession(_ context.Context, req *client.CheckoutSessionRequest) (*client.CheckoutSessionResult, error) {
	m.calls++
	m.gotReq = req
	return m.result, m.err
}

// MockPaypalClient implements client.PaypalClient for testing
type MockPaypalClient struct {
	gotOrderReq  *client.WalletOrderRequest
	gotCaptureID string
	orderID      string
	err          error
	calls        int
}

func (m *MockPaypalClient) CreateOrder(_ context.Context, req *client.WalletOrderRequest) (string, error) {
	m.calls++
	m.gotOrderReq = req
	return m.orderID, m.err
}

func (m *MockPaypalClient) CaptureOrder(_ context.Context, orderID string) error {
	m.calls++
	m.gotCaptureID = orderID
	return m.err
}

func newTestService(t *testing.T, stripe *MockStripeClient, paypal *MockPaypalClient) CheckoutService {
	t.Helper()
	cat, err := catalog.Load(config.Catalog{})
	require.NoError(t, err)
	return NewCheckoutService(stripe, paypal, cat, "https://voltpad.app", "Voltpad")
}

func TestCreateCardSession_TranslatesProductAndRequest(t *testing.T) {
	stripe := &MockStripeClient{
		result: &client.CheckoutSessionResult{SessionID: "cs_test_123", URL: "https://pay.example/cs_test_123"},
	}
	svc := newTestService(t, stripe, &MockPaypalClient{})

	resp, err := svc.CreateCardSession(context.Background(), &dto.CardCheckoutRequest{
		Email: "buyer@example.com",
		Plan:  "premium",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://pay.example/cs_test_123", resp.URL)

	require.NotNil(t, stripe.gotReq)
	assert.Equal(t, "buyer@example.com", stripe.gotReq.Email)
	assert.Equal(t, "premium", stripe.gotReq.Plan)
	assert.Equal(t, "Voltpad Premium", stripe.gotReq.ProductName)
	assert.Equal(t, int64(4900), stripe.gotReq.AmountCents)
	assert.Equal(t, "USD", stripe.gotReq.Currency)
	assert.Equal(t, "https://voltpad.app/checkout/success", stripe.gotReq.SuccessURL)
	assert.Equal(t, "https://voltpad.app/checkout/cancel", stripe.gotReq.CancelURL)
}

func TestCreateCardSession_UnknownPlanRejectedBeforeVendorCall(t *testing.T) {
	stripe := &MockStripeClient{}
	svc := newTestService(t, stripe, &MockPaypalClient{})

	_, err := svc.CreateCardSession(context.Background(), &dto.CardCheckoutRequest{
		Email: "buyer@example.com",
		Plan:  "ultimate",
	})

	assert.ErrorIs(t, err, catalog.ErrPlanNotFound)
	assert.Zero(t, stripe.calls)
}

func TestCreateCardSession_VendorFailureIsTagged(t *testing.T) {
	vendorErr := errors.New("stripe: invalid api key")
	stripe := &MockStripeClient{err: vendorErr}
	svc := newTestService(t, stripe, &MockPaypalClient{})

	_, err := svc.CreateCardSession(context.Background(), &dto.CardCheckoutRequest{
		Email: "buyer@example.com",
		Plan:  "pro",
	})

	assert.ErrorIs(t, err, ErrVendor)
	assert.ErrorIs(t, err, vendorErr)
}

func TestCreateWalletOrder_TranslatesProductAndRequest(t *testing.T) {
	paypal := &MockPaypalClient{orderID: "5O190127TN364715T"}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	resp, err := svc.CreateWalletOrder(context.Background(), &dto.WalletOrderRequest{
		Email: "buyer@example.com",
		Plan:  "enterprise",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "5O190127TN364715T", resp.OrderID)

	require.NotNil(t, paypal.gotOrderReq)
	assert.Equal(t, "buyer@example.com", paypal.gotOrderReq.Email)
	assert.Equal(t, "enterprise", paypal.gotOrderReq.Plan)
	assert.Equal(t, int64(29900), paypal.gotOrderReq.AmountCents)
	assert.Equal(t, "USD", paypal.gotOrderReq.Currency)
	assert.Equal(t, "Voltpad", paypal.gotOrderReq.BrandName)
	assert.Equal(t, "https://voltpad.app/checkout/success", paypal.gotOrderReq.SuccessURL)
	assert.Equal(t, "https://voltpad.app/checkout/cancel", paypal.gotOrderReq.CancelURL)
}

func TestCreateWalletOrder_EmailOptional(t *testing.T) {
	paypal := &MockPaypalClient{orderID: "5O190127TN364715T"}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	resp, err := svc.CreateWalletOrder(context.Background(), &dto.WalletOrderRequest{
		Plan: "premium",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, paypal.gotOrderReq.Email)
}

func TestCreateWalletOrder_VendorFailureIsTagged(t *testing.T) {
	paypal := &MockPaypalClient{err: errors.New("paypal error 401: invalid client")}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	_, err := svc.CreateWalletOrder(context.Background(), &dto.WalletOrderRequest{Plan: "premium"})

	assert.ErrorIs(t, err, ErrVendor)
}

func TestCaptureWalletOrder(t *testing.T) {
	paypal := &MockPaypalClient{}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	resp, err := svc.CaptureWalletOrder(context.Background(), &dto.CaptureRequest{OrderID: "5O190127TN364715T"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "5O190127TN364715T", paypal.gotCaptureID)
}

func TestCaptureWalletOrder_VendorFailureIsTagged(t *testing.T) {
	paypal := &MockPaypalClient{err: errors.New("paypal capture failed: status=422")}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	_, err := svc.CaptureWalletOrder(context.Background(), &dto.CaptureRequest{OrderID: "bad"})

	assert.ErrorIs(t, err, ErrVendor)
}

func TestNoDeduplication_TwoIdenticalRequestsHitVendorTwice(t *testing.T) {
	paypal := &MockPaypalClient{orderID: "5O190127TN364715T"}
	svc := newTestService(t, &MockStripeClient{}, paypal)

	req := &dto.WalletOrderRequest{Email: "buyer@example.com", Plan: "premium"}
	_, err := svc.CreateWalletOrder(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.CreateWalletOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, paypal.calls)
}
