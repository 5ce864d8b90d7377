package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"voltpad-checkout/internal/config"
)

const (
	paypalLiveURL    = "https://api-m.paypal.com"
	paypalSandboxURL = "https://api-m.sandbox.paypal.com"
)

// --- INTERFACE ---

type PaypalClient interface {
	// CreateOrder creates a capture-intent order and returns its id.
	CreateOrder(ctx context.Context, req *WalletOrderRequest) (string, error)

	// CaptureOrder finalizes a previously created order.
	CaptureOrder(ctx context.Context, orderID string) error
}

// WalletOrderRequest carries the purchase unit and redirect targets for
// one order. AmountCents is minor currency units; the wire format wants
// a decimal string, which the client renders.
type WalletOrderRequest struct {
	Email       string
	Plan        string
	Description string
	AmountCents int64
	Currency    string
	BrandName   string
	SuccessURL  string
	CancelURL   string
}

// --- IMPLEMENTATION ---

type paypalClientImpl struct {
	httpClient   *http.Client
	baseApiURL   string
	clientID     string
	clientSecret string
}

// NewPaypalClient picks the live API for production deployments and the
// sandbox for everything else.
func NewPaypalClient(cfg *config.Paypal, production bool) PaypalClient {
	baseURL := paypalSandboxURL
	if production {
		baseURL = paypalLiveURL
	}

	return &paypalClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:   baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

func (c *paypalClientImpl) getAccessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.clientID + ":" + c.clientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/oauth2/token",
		bytes.NewBufferString("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal token error %d: %s", resp.StatusCode, string(b))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	return res.AccessToken, nil
}

func (c *paypalClientImpl) CreateOrder(ctx context.Context, orderReq *WalletOrderRequest) (string, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("get paypal access token: %w", err)
	}

	// serialized into custom_id so the capture webhook can correlate the
	// buyer without any state on our side
	customID, err := json.Marshal(map[string]string{
		"email": orderReq.Email,
		"plan":  orderReq.Plan,
	})
	if err != nil {
		return "", fmt.Errorf("marshal custom id: %w", err)
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": uuid.NewString(),
				"description":  orderReq.Description,
				"custom_id":    string(customID),
				"amount": map[string]string{
					"currency_code": orderReq.Currency,
					"value":         formatAmount(orderReq.AmountCents),
				},
			},
		},
		"application_context": map[string]string{
			"brand_name":   orderReq.BrandName,
			"landing_page": "NO_PREFERENCE",
			"user_action":  "PAY_NOW",
			"return_url":   orderReq.SuccessURL,
			"cancel_url":   orderReq.CancelURL,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v2/checkout/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal create order request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode paypal response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("paypal response missing order id")
	}

	return result.ID, nil
}

func (c *paypalClientImpl) CaptureOrder(ctx context.Context, orderID string) error {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("get paypal access token: %w", err)
	}

	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseApiURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create capture request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paypal capture request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("paypal capture failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return nil
}

// formatAmount renders minor units as the two-decimal string the order
// API expects, e.g. 4900 -> "49.00".
func formatAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
