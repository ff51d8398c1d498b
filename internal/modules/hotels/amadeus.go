// README: Amadeus API client (OAuth token exchange and hotel-offers query).
package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	productionBaseURL = "https://api.amadeus.com"
	sandboxBaseURL    = "https://test.api.amadeus.com"

	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v3/shopping/hotel-offers"
)

// Client talks to the Amadeus self-service API.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	now func() time.Time
}

// NewClient selects the sandbox base URL unless env is "production".
func NewClient(clientID, clientSecret, env string) *Client {
	baseURL := sandboxBaseURL
	if env == "production" {
		baseURL = productionBaseURL
	}
	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
}

// SetBaseURL points the client at a different host. Tests use it to target
// stub servers.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// IssueToken performs one client-credentials exchange. The expiry is computed
// from the provider-reported lifetime, defaulting when unspecified.
func (c *Client) IssueToken(ctx context.Context) (Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return Credential{}, fmt.Errorf("amadeus: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Credential{}, fmt.Errorf("amadeus: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Credential{}, fmt.Errorf("amadeus: read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Credential{}, &ProviderError{Status: resp.StatusCode, Body: string(body)}
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return Credential{}, fmt.Errorf("amadeus: parse token response: %w", err)
	}

	lifetime := defaultTokenLifetime
	if tr.ExpiresIn > 0 {
		lifetime = time.Duration(tr.ExpiresIn) * time.Second
	}
	return Credential{Token: tr.AccessToken, ExpiresAt: c.now().Add(lifetime)}, nil
}

// offerEntry mirrors the slice of the hotel-offers response the mapper consumes.
type offerEntry struct {
	ID    string `json:"id"`
	Hotel struct {
		Name   string `json:"name"`
		Rating string `json:"rating"`
		Media  []struct {
			URI string `json:"uri"`
		} `json:"media"`
		Address struct {
			Lines    []string `json:"lines"`
			CityName string   `json:"cityName"`
		} `json:"address"`
	} `json:"hotel"`
	Offers []struct {
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"offers"`
}

// fetchOffers queries hotel offers for the given city/dates. Room quantity,
// best-rate-only, and price sorting are fixed; no pagination, no retry.
func (c *Client) fetchOffers(ctx context.Context, token string, q Query) ([]offerEntry, error) {
	params := url.Values{}
	params.Set("cityCode", q.CityCode)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("roomQuantity", "1")
	params.Set("checkInDate", q.CheckInDate)
	params.Set("checkOutDate", q.CheckOutDate)
	params.Set("currency", q.Currency)
	params.Set("bestRateOnly", "true")
	params.Set("sort", "PRICE")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+offersPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: build offers request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: offers request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("amadeus: read offers response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Status: resp.StatusCode, Body: string(body)}
	}

	var or struct {
		Data []offerEntry `json:"data"`
	}
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, fmt.Errorf("amadeus: parse offers response: %w", err)
	}
	return or.Data, nil
}
