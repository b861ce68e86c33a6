package source

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/neexbeast/farescout/internal/fare"
)

type carrier struct {
	name   string
	prefix string
}

var mockCarriers = []carrier{
	{"Air China", "CA"},
	{"China Eastern", "MU"},
	{"China Southern", "CZ"},
	{"Hainan Airlines", "HU"},
	{"Sichuan Airlines", "3U"},
	{"Spring Airlines", "9C"},
	{"Cathay Pacific", "CX"},
	{"ANA", "NH"},
}

// MockSource generates plausible offers without any network access.
// The same query always yields the same offers.
type MockSource struct {
	count int
}

// NewMockSource returns a MockSource producing count offers per query.
// A non-positive count falls back to 8.
func NewMockSource(count int) *MockSource {
	if count <= 0 {
		count = 8
	}
	return &MockSource{count: count}
}

// Name returns "mock".
func (s *MockSource) Name() string {
	return "mock"
}

// Search generates offers for q.
func (s *MockSource) Search(ctx context.Context, q Query) ([]fare.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(q.Origin + "|" + q.Destination + "|" + q.Date))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(s.count)))

	offers := make([]fare.Offer, 0, s.count)
	for i := 0; i < s.count; i++ {
		c := mockCarriers[rng.IntN(len(mockCarriers))]

		transfers := 0
		if rng.IntN(2) == 1 {
			transfers = 1 + rng.IntN(2)
		}

		depart := 6*60 + rng.IntN(16*60/5)*5
		duration := 90 + rng.IntN(240) + transfers*(60+rng.IntN(180))

		// Connecting itineraries are discounted per leg.
		base := 300 + rng.Float64()*2200
		price := math.Round(base*(1-0.15*float64(transfers))/10) * 10

		o, err := fare.NewOffer(fare.Offer{
			FlightNumber:  fmt.Sprintf("%s%d", c.prefix, 1000+rng.IntN(9000)),
			Airline:       c.name,
			DepartureTime: clock(depart),
			ArrivalTime:   clock(depart + duration),
			Price:         price,
			Origin:        q.Origin,
			Destination:   q.Destination,
			Date:          q.Date,
			HasTransfer:   transfers > 0,
			TransferCount: transfers,
		})
		if err != nil {
			return nil, fmt.Errorf("generating mock offer: %w", err)
		}
		offers = append(offers, o)
	}

	return offers, nil
}

// clock formats minutes after midnight as HH:MM, marking next-day arrivals with +N.
func clock(minutes int) string {
	days := minutes / (24 * 60)
	minutes %= 24 * 60
	s := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	if days > 0 {
		s += fmt.Sprintf("+%d", days)
	}
	return s
}
