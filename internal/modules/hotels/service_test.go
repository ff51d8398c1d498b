package hotels

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

// staticCreds is a CredentialCache test double.
type staticCreds struct {
	token string
	err   error
}

func (s *staticCreds) GetOrRefresh(_ context.Context) (string, error) {
	return s.token, s.err
}

const offersFixture = `{
  "data": [
    {
      "id": "OFFER1",
      "hotel": {
        "name": "Hotel Rio",
        "rating": "4",
        "media": [{"uri": "https://img.example/rio.jpg"}],
        "address": {"lines": ["Av. Atlantica 100"], "cityName": "Rio de Janeiro"}
      },
      "offers": [{"price": {"total": "231.50", "currency": "BRL"}}]
    },
    {
      "id": "OFFER2",
      "hotel": {
        "name": "Plain Stay",
        "address": {"cityName": "Rio de Janeiro"}
      },
      "offers": [{"price": {"total": ""}}]
    }
  ]
}`

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient("id", "secret", "")
	client.SetBaseURL(srv.URL)
	return NewService(client, &staticCreds{token: "tok"}), srv
}

func sampleQuery() Query {
	return Query{
		CityCode:     "RIO",
		CheckInDate:  "2026-04-01",
		CheckOutDate: "2026-04-05",
		Adults:       2,
		Currency:     "USD",
	}
}

func TestSearch_Mapping(t *testing.T) {
	var gotQuery url.Values
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(offersFixture))
	})

	offers, err := svc.Search(context.Background(), sampleQuery())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("offers len = %d, want 2", len(offers))
	}

	full := offers[0]
	if full.ID != "OFFER1" || full.Title != "Hotel Rio" {
		t.Errorf("offer identity = %q/%q", full.ID, full.Title)
	}
	if full.Img != "https://img.example/rio.jpg" {
		t.Errorf("img = %q", full.Img)
	}
	if full.Price != 231.50 || full.Currency != "BRL" {
		t.Errorf("price = %v %s", full.Price, full.Currency)
	}
	if full.Badge != "4★" {
		t.Errorf("badge = %q", full.Badge)
	}
	if full.Address != "Av. Atlantica 100, Rio de Janeiro" {
		t.Errorf("address = %q", full.Address)
	}
	wantURL := "https://www.booking.com/searchresults.html?aid=YOURAID&ss=" +
		url.QueryEscape("Hotel Rio Rio de Janeiro") +
		"&checkin=2026-04-01&checkout=2026-04-05&group_adults=2"
	if full.URL != wantURL {
		t.Errorf("url = %q, want %q", full.URL, wantURL)
	}

	sparse := offers[1]
	if sparse.Img != placeholderImage {
		t.Errorf("img = %q, want placeholder for missing media", sparse.Img)
	}
	if sparse.Badge != "" {
		t.Errorf("badge = %q, want none for missing rating", sparse.Badge)
	}
	if sparse.Price != 0 {
		t.Errorf("price = %v, want 0 for unparseable total", sparse.Price)
	}
	if sparse.Currency != "USD" {
		t.Errorf("currency = %q, want the request default", sparse.Currency)
	}
	if sparse.Address != "Rio de Janeiro" {
		t.Errorf("address = %q, want city only", sparse.Address)
	}

	// Fixed offer-query parameters.
	for key, want := range map[string]string{
		"cityCode":     "RIO",
		"adults":       "2",
		"roomQuantity": "1",
		"checkInDate":  "2026-04-01",
		"checkOutDate": "2026-04-05",
		"currency":     "USD",
		"bestRateOnly": "true",
		"sort":         "PRICE",
	} {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
}

func TestSearch_EmptyData(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})
	offers, err := svc.Search(context.Background(), sampleQuery())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if offers == nil || len(offers) != 0 {
		t.Errorf("offers = %v, want empty non-nil slice", offers)
	}
}

func TestSearch_ProviderErrorPropagates(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("INVALID DATE"))
	})
	_, err := svc.Search(context.Background(), sampleQuery())
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if pe.Status != http.StatusBadRequest {
		t.Errorf("status = %d", pe.Status)
	}
}

func TestSearch_TokenErrorShortCircuits(t *testing.T) {
	offersCalled := false
	svc, _ := newTestService(t, func(_ http.ResponseWriter, _ *http.Request) {
		offersCalled = true
	})
	svc.creds = &staticCreds{err: &ProviderError{Status: 401, Body: "bad creds"}}

	_, err := svc.Search(context.Background(), sampleQuery())
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Status != 401 {
		t.Fatalf("error = %v, want the token provider error", err)
	}
	if offersCalled {
		t.Error("offers endpoint was called despite the token failure")
	}
}

// Full token lifecycle against one stub server: the bearer token is cached
// across searches and re-issued only after it expires.
func TestSearch_TokenCachedAcrossSearches(t *testing.T) {
	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, _ *http.Request) {
		tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 1800})
	})
	mux.HandleFunc(offersPath, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient("id", "secret", "")
	client.SetBaseURL(srv.URL)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	client.now = func() time.Time { return now }

	cache := NewMemoryCredentialCache(client.IssueToken)
	cache.now = func() time.Time { return now }
	svc := NewService(client, cache)

	for i := 0; i < 2; i++ {
		if _, err := svc.Search(context.Background(), sampleQuery()); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}
	if n := tokenCalls.Load(); n != 1 {
		t.Errorf("token exchanges = %d, want 1 within the validity window", n)
	}

	now = base.Add(31 * time.Minute)
	if _, err := svc.Search(context.Background(), sampleQuery()); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if n := tokenCalls.Load(); n != 2 {
		t.Errorf("token exchanges = %d, want 2 after expiry", n)
	}
}
