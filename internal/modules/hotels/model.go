// README: Hotel offer models and provider error type.
package hotels

import "fmt"

// Query is one hotel-offers search.
type Query struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Currency     string
}

// Offer is a display-ready hotel offer derived purely from the provider response.
type Offer struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Img      string  `json:"img"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	URL      string  `json:"url"`
	Badge    string  `json:"badge,omitempty"`
	Address  string  `json:"address"`
}

// ProviderError is a non-2xx response from the token or offers endpoint,
// surfaced verbatim with the upstream status and body. No retry, no fallback.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("Amadeus %d: %s", e.Status, e.Body)
}
