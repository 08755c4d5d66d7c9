package gamesync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/storage"
)

// Client is the game API surface the companion depends on. The HTTP
// implementation talks to the official servers; tests substitute
// fakes.
type Client interface {
	Login(ctx context.Context, username, password string) error
	RefreshToken(ctx context.Context) error
	Logout(ctx context.Context) error
	FetchStorage(ctx context.Context, playerID string) (storage.APISnapshot, error)
	PushStorage(ctx context.Context, snap storage.APISnapshot) error
	FetchPrices(ctx context.Context, materials []string) ([]domain.MaterialPrice, error)
}

// HTTPClient implements Client against the game's REST API. Requests
// carry a fixed timeout and are never retried; callers decide whether
// a failed sync is worth repeating.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   *CredentialsStore
}

// NewHTTPClient creates a game API client. baseURL has no trailing
// slash; endpoint constants supply the leading one.
func NewHTTPClient(baseURL string, timeout time.Duration, creds *CredentialsStore) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Login authenticates with username and password and stores the
// returned token pair.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, EndpointLogin, nil, body, &resp); err != nil {
		return err
	}
	return c.creds.SetTokens(ctx, resp.AccessToken, resp.RefreshToken)
}

// RefreshToken exchanges the stored refresh token for a new access
// token. Without a stored refresh token this is a configuration
// error, not an API failure.
func (c *HTTPClient) RefreshToken(ctx context.Context) error {
	current := c.creds.Current()
	if current.RefreshToken == "" {
		return fmt.Errorf("%w: %s", domain.ErrNotConfigured, ErrMsgNoRefreshToken)
	}
	body := map[string]string{"refresh_token": current.RefreshToken}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, EndpointRefreshToken, nil, body, &resp); err != nil {
		return err
	}
	return c.creds.SetTokens(ctx, resp.AccessToken, resp.RefreshToken)
}

// Logout invalidates the server-side session. Best effort; callers
// typically ignore the error on shutdown.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, EndpointLogout, nil, nil, nil)
}

// FetchStorage retrieves the player's storage snapshot.
func (c *HTTPClient) FetchStorage(ctx context.Context, playerID string) (storage.APISnapshot, error) {
	params := url.Values{}
	if playerID != "" {
		params.Set(QueryParamPlayer, playerID)
	}
	var snap storage.APISnapshot
	if err := c.do(ctx, http.MethodGet, EndpointPlayerStorage, params, nil, &snap); err != nil {
		return storage.APISnapshot{}, err
	}
	return snap, nil
}

type pushRequest struct {
	StorageData storage.APISnapshot `json:"storage_data"`
	PlayerID    string              `json:"player_id,omitempty"`
	Timestamp   string              `json:"timestamp"`
}

// PushStorage uploads the local storage snapshot.
func (c *HTTPClient) PushStorage(ctx context.Context, snap storage.APISnapshot) error {
	body := pushRequest{
		StorageData: snap,
		PlayerID:    snap.PlayerID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	return c.do(ctx, http.MethodPost, EndpointStorageSync, nil, body, nil)
}

type pricesResponse struct {
	Prices []domain.MaterialPrice `json:"prices"`
}

// FetchPrices retrieves current market prices. An empty materials
// slice asks for everything the API tracks.
func (c *HTTPClient) FetchPrices(ctx context.Context, materials []string) ([]domain.MaterialPrice, error) {
	params := url.Values{}
	if len(materials) > 0 {
		params.Set(QueryParamItems, strings.Join(materials, ","))
	}
	var resp pricesResponse
	if err := c.do(ctx, http.MethodGet, EndpointMarketPrices, params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prices, nil
}

// do performs one request against the API. Authentication prefers the
// bearer token and falls back to the API key header. Status 401 maps
// to domain.ErrNotAuthorized, every other failure to
// domain.ErrSyncUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	log := logger.FromContext(ctx)

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	creds := c.creds.Current()
	switch {
	case creds.AccessToken != "":
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	case creds.APIKey != "":
		req.Header.Set(HeaderAPIKey, creds.APIKey)
	}

	log.Debug("Game API request", "method", method, "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(ErrFmtRequestFailed, domain.ErrSyncUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrNotAuthorized, endpoint)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf(ErrFmtBadStatus, domain.ErrSyncUnavailable, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(ErrFmtDecodeFailed, endpoint, err)
	}
	return nil
}
