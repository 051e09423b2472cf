package relay

import (
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newClientFixture(t *testing.T, issuedSupply *big.Int) (*httptest.Server, *Client) {
	t.Helper()

	_, _, relayServer := newTestServer(t, issuedSupply)
	fixture := httptest.NewServer(relayServer.Handler())
	t.Cleanup(fixture.Close)

	client, err := NewClient(ClientConfig{BaseURL: fixture.URL})
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}
	return fixture, client
}

func TestClientTransferRoundTrip(t *testing.T) {
	_, client := newClientFixture(t, big.NewInt(1000))

	response, err := client.Transfer(t.Context(), TransferRequest{
		To:     relayBuyer.Hex(),
		Amount: "100",
	})
	if err != nil {
		t.Fatalf("unexpected transfer error: %v", err)
	}
	if !response.Success {
		t.Fatal("expected success response")
	}
	if response.Amount != "100" {
		t.Fatalf("expected amount 100, got %s", response.Amount)
	}

	balance, err := client.Balance(t.Context(), relayBuyer.Hex())
	if err != nil {
		t.Fatalf("unexpected balance error: %v", err)
	}
	if balance.Balance != "100" {
		t.Fatalf("expected balance 100, got %s", balance.Balance)
	}
}

func TestClientSurfacesAPIError(t *testing.T) {
	_, client := newClientFixture(t, big.NewInt(10))

	_, err := client.Transfer(t.Context(), TransferRequest{
		To:     relayBuyer.Hex(),
		Amount: "11",
	})

	var apiError APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiError.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiError.StatusCode)
	}
	if apiError.Message == "" {
		t.Fatal("expected the ledger failure message to be surfaced")
	}
}

func TestClientDecimalsAndAsset(t *testing.T) {
	_, client := newClientFixture(t, big.NewInt(1000))

	decimals, err := client.Decimals(t.Context())
	if err != nil {
		t.Fatalf("unexpected decimals error: %v", err)
	}
	if decimals.Decimals != 18 {
		t.Fatalf("expected 18 decimals, got %d", decimals.Decimals)
	}

	asset, err := client.Asset(t.Context(), 1)
	if err != nil {
		t.Fatalf("unexpected asset error: %v", err)
	}
	if asset.IssuedSupply != "1000" {
		t.Fatalf("expected issued supply 1000, got %s", asset.IssuedSupply)
	}
}

func TestClientRejectsInvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "ftp://relay.local", "not a url at all\x00"} {
		if _, err := NewClient(ClientConfig{BaseURL: baseURL}); err == nil {
			t.Fatalf("expected error for base URL %q", baseURL)
		}
	}
}
