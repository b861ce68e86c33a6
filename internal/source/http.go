package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/neexbeast/farescout/internal/fare"
)

const httpTimeout = 10 * time.Second

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// HTTPSource fetches offers from a JSON fare API.
type HTTPSource struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewHTTPSource constructs an HTTPSource for baseURL. The URL host names the source.
func NewHTTPSource(baseURL string) *HTTPSource {
	name := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		name = u.Host
	}
	return &HTTPSource{name: name, baseURL: baseURL, client: newHTTPClient()}
}

// Name returns the source name used in logs.
func (s *HTTPSource) Name() string {
	return s.name
}

type fareAPIResponse struct {
	Flights []struct {
		FlightNumber  string  `json:"flight_number"`
		Airline       string  `json:"airline"`
		DepartureTime string  `json:"departure_time"`
		ArrivalTime   string  `json:"arrival_time"`
		Price         float64 `json:"price"`
		Transfers     int     `json:"transfers"`
	} `json:"flights"`
}

// Search queries the API for q. Records that fail offer validation are
// skipped with a warning.
func (s *HTTPSource) Search(ctx context.Context, q Query) ([]fare.Offer, error) {
	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	params.Set("date", q.Date)
	endpoint := s.baseURL + "?" + params.Encode()

	var raw fareAPIResponse
	if err := doGet(ctx, s.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("%s search %s-%s: %w", s.name, q.Origin, q.Destination, err)
	}

	offers := make([]fare.Offer, 0, len(raw.Flights))
	for _, f := range raw.Flights {
		o, err := fare.NewOffer(fare.Offer{
			FlightNumber:  f.FlightNumber,
			Airline:       f.Airline,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Price:         f.Price,
			Origin:        q.Origin,
			Destination:   q.Destination,
			Date:          q.Date,
			HasTransfer:   f.Transfers > 0,
			TransferCount: f.Transfers,
		})
		if err != nil {
			slog.Warn("skipping malformed offer", "source", s.name, "flight", f.FlightNumber, "err", err)
			continue
		}
		offers = append(offers, o)
	}

	return offers, nil
}
