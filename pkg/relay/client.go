package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client is a typed REST client for the relay surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx relay response, carrying the raw failure message
// the relay surfaced from the ledger.
type APIError struct {
	StatusCode int
	Message    string
}

func (errorValue APIError) Error() string {
	return fmt.Sprintf("relay request failed with status %d: %s", errorValue.StatusCode, errorValue.Message)
}

// NewClient creates a relay client for the given base URL.
func NewClient(config ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("relay base URL is required")
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid relay base URL: scheme must be http or https")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Transfer submits a distribution request.
func (client *Client) Transfer(ctx context.Context, request TransferRequest) (TransferResponse, error) {
	var response TransferResponse
	err := client.postJSON(ctx, "/api/transfer", request, &response)
	return response, err
}

// Balance returns the token balance held by account.
func (client *Client) Balance(ctx context.Context, account string) (BalanceResponse, error) {
	var response BalanceResponse
	if strings.TrimSpace(account) == "" {
		return response, fmt.Errorf("account is required")
	}
	err := client.getJSON(ctx, fmt.Sprintf("/api/balance/%s", account), &response)
	return response, err
}

// Decimals returns the token's decimal places.
func (client *Client) Decimals(ctx context.Context) (DecimalsResponse, error) {
	var response DecimalsResponse
	err := client.getJSON(ctx, "/api/decimals", &response)
	return response, err
}

// Asset returns a registered asset record.
func (client *Client) Asset(ctx context.Context, assetID uint64) (AssetResponse, error) {
	var response AssetResponse
	err := client.getJSON(ctx, fmt.Sprintf("/api/assets/%d", assetID), &response)
	return response, err
}

func (client *Client) getJSON(ctx context.Context, path string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	return client.do(request, target)
}

func (client *Client) postJSON(ctx context.Context, path string, payload any, target any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")

	return client.do(request, target)
}

func (client *Client) do(request *http.Request, target any) error {
	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read relay response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errorResponse ErrorResponse
		if decodeErr := json.Unmarshal(body, &errorResponse); decodeErr == nil && errorResponse.Error != "" {
			return APIError{StatusCode: response.StatusCode, Message: errorResponse.Error}
		}
		return APIError{StatusCode: response.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}
	return nil
}
