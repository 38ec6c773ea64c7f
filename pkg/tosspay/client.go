package tosspay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.tosspayments.com"

// Gateway is the slice of the provider API the payment flow uses.
// Every call is attempted exactly once; retries are the caller's
// explicit decision, and there are none in this codebase.
type Gateway interface {
	ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) (*Payment, error)
	CancelPayment(ctx context.Context, paymentKey, reason string) (*Payment, error)
}

// Payment mirrors the fields we read from the provider payload. Raw
// keeps the full response body for auditing.
type Payment struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"totalAmount"`
	Method      string `json:"method"`
	ApprovedAt  string `json:"approvedAt"`

	Raw json.RawMessage `json:"-"`
}

// APIError carries the provider's own error code and message so
// handlers can forward them verbatim.
type APIError struct {
	HTTPStatus int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tosspay: %s (%s)", e.Message, e.Code)
}

type Config struct {
	SecretKey string
	BaseURL   string // override for sandbox/tests
	Timeout   time.Duration
}

type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		secretKey:  cfg.SecretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) (*Payment, error) {
	body := map[string]interface{}{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}
	return c.post(ctx, "/v1/payments/confirm", body)
}

func (c *Client) CancelPayment(ctx context.Context, paymentKey, reason string) (*Payment, error) {
	body := map[string]interface{}{
		"cancelReason": reason,
	}
	path := fmt.Sprintf("/v1/payments/%s/cancel", url.PathEscape(paymentKey))
	return c.post(ctx, path, body)
}

func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) (*Payment, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("tosspay: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("tosspay: build request: %w", err)
	}
	// The provider authenticates with basic auth on the secret key and
	// an empty password.
	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tosspay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tosspay: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Code = "UNKNOWN"
			apiErr.Message = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		return nil, apiErr
	}

	var payment Payment
	if err := json.Unmarshal(raw, &payment); err != nil {
		return nil, fmt.Errorf("tosspay: decode response: %w", err)
	}
	payment.Raw = raw
	return &payment, nil
}
