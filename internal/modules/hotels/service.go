// README: Hotel search service; token-gated offers query and display mapping.
package hotels

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// placeholderImage is used when an offer carries no media.
const placeholderImage = "https://images.unsplash.com/photo-1559599101-59df613ebc84?q=80&w=1600&auto=format&fit=crop"

// Service searches hotel offers through a credential-gated provider client.
// Offer results are never cached; only the bearer token is.
type Service struct {
	client *Client
	creds  CredentialCache
}

func NewService(client *Client, creds CredentialCache) *Service {
	return &Service{client: client, creds: creds}
}

// Search returns display-ready offers for the query. At most two sequential
// outbound calls are made: the token exchange (when the cache misses) and the
// offers query.
func (s *Service) Search(ctx context.Context, q Query) ([]Offer, error) {
	token, err := s.creds.GetOrRefresh(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.client.fetchOffers(ctx, token, q)
	if err != nil {
		return nil, err
	}

	offers := make([]Offer, 0, len(entries))
	for _, e := range entries {
		offers = append(offers, mapOffer(e, q))
	}
	return offers, nil
}

// mapOffer turns one provider entry into a display record. Missing media falls
// back to the placeholder image, a missing rating yields no badge, and the
// address joins the first line and city name, skipping absent parts.
func mapOffer(e offerEntry, q Query) Offer {
	o := Offer{
		ID:       e.ID,
		Title:    e.Hotel.Name,
		Img:      placeholderImage,
		Currency: q.Currency,
	}

	if len(e.Hotel.Media) > 0 && e.Hotel.Media[0].URI != "" {
		o.Img = e.Hotel.Media[0].URI
	}

	if len(e.Offers) > 0 {
		first := e.Offers[0]
		if p, err := strconv.ParseFloat(first.Price.Total, 64); err == nil {
			o.Price = p
		}
		if first.Price.Currency != "" {
			o.Currency = first.Price.Currency
		}
	}

	if e.Hotel.Rating != "" {
		o.Badge = e.Hotel.Rating + "★"
	}

	var parts []string
	if len(e.Hotel.Address.Lines) > 0 && e.Hotel.Address.Lines[0] != "" {
		parts = append(parts, e.Hotel.Address.Lines[0])
	}
	if e.Hotel.Address.CityName != "" {
		parts = append(parts, e.Hotel.Address.CityName)
	}
	o.Address = joinParts(parts)

	o.URL = bookingSearchURL(e.Hotel.Name, e.Hotel.Address.CityName, q)
	return o
}

func joinParts(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + ", " + parts[1]
	}
}

// bookingSearchURL builds the external booking-search link from hotel name,
// city, dates, and adult count.
func bookingSearchURL(name, city string, q Query) string {
	return fmt.Sprintf(
		"https://www.booking.com/searchresults.html?aid=YOURAID&ss=%s&checkin=%s&checkout=%s&group_adults=%d",
		url.QueryEscape(name+" "+city), q.CheckInDate, q.CheckOutDate, q.Adults)
}
