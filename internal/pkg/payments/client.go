package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// Config defines the payment processor settings.
type Config struct {
	BaseURL    string
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Client talks to the external payment processor's checkout API. The
// processor is the source of truth for payment outcomes; this codebase never
// derives payment state on its own.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a payment processor API client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// LineItem is a single priced entry on a checkout session. Amount is in
// minor units of the session currency.
type LineItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int    `json:"quantity"`
}

// CheckoutParams describes a checkout session to create.
type CheckoutParams struct {
	AmountMinor int64
	ProductName string
	Metadata    map[string]string
}

// CheckoutSession is the processor's session record.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// PaymentStatusPaid is the processor's terminal paid status.
const PaymentStatusPaid = "paid"

type createSessionRequest struct {
	Mode       string            `json:"mode"`
	Currency   string            `json:"currency"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	LineItems  []LineItem        `json:"line_items"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// CreateCheckoutSession creates a checkout session and returns it with the
// hosted redirect URL filled in.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	payload := createSessionRequest{
		Mode:       "payment",
		Currency:   c.config.Currency,
		SuccessURL: c.config.SuccessURL,
		CancelURL:  c.config.CancelURL,
		LineItems: []LineItem{{
			Name:     params.ProductName,
			Amount:   params.AmountMinor,
			Quantity: 1,
		}},
		Metadata: params.Metadata,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	endpoint := c.config.BaseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.SecretKey)
	// One key per call: the processor deduplicates replays of this request,
	// while a new call opens a new session.
	req.Header.Set("Idempotency-Key", uuid.New().String())

	return c.doSession(req)
}

// GetCheckoutSession retrieves a checkout session by its identifier.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.config.BaseURL, url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.SecretKey)

	return c.doSession(req)
}

func (c *Client) doSession(req *http.Request) (*CheckoutSession, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("url", req.URL.Path).Msg("Payment processor request failed")
		return nil, fmt.Errorf("payment processor request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn().Int("status", resp.StatusCode).Str("url", req.URL.Path).Msg("Payment processor rejected request")
		return nil, fmt.Errorf("payment processor error: status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &session, nil
}
