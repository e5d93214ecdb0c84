package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// ClientConfig defines the provider account API settings.
type ClientConfig struct {
	BaseURL string
	APIKey  string
}

// Client talks to the identity provider's account API.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates an identity provider API client.
func NewClient(config ClientConfig) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProviderData describes one linked sign-in provider on an account.
type ProviderData struct {
	ProviderID string `json:"providerId"`
	Email      string `json:"email"`
}

// Account is the provider's profile record for a subject.
type Account struct {
	UID          string         `json:"uid"`
	Email        string         `json:"email"`
	DisplayName  string         `json:"displayName"`
	PhotoURL     string         `json:"photoUrl,omitempty"`
	ProviderData []ProviderData `json:"providerData"`
}

// GetAccount fetches the profile for a verified subject identifier.
func (c *Client) GetAccount(ctx context.Context, uid string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/v1/accounts/%s", c.config.BaseURL, url.PathEscape(uid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("uid", uid).Msg("Identity provider request failed")
		return nil, fmt.Errorf("identity provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Str("uid", uid).Msg("Identity provider rejected account lookup")
		return nil, fmt.Errorf("identity provider error: status %d", resp.StatusCode)
	}

	var account Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("unmarshal account: %w", err)
	}

	return &account, nil
}
