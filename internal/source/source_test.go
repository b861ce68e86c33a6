package source_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/source"
)

var testQuery = source.Query{Origin: "bjs", Destination: "sha", Date: "2025-11-21"}

// ---- mock Source ----

type mockSource struct {
	name     string
	searchFn func(ctx context.Context, q source.Query) ([]fare.Offer, error)
}

func (m *mockSource) Name() string { return m.name }
func (m *mockSource) Search(ctx context.Context, q source.Query) ([]fare.Offer, error) {
	return m.searchFn(ctx, q)
}

func fixed(name string, offers ...fare.Offer) *mockSource {
	return &mockSource{name: name, searchFn: func(_ context.Context, _ source.Query) ([]fare.Offer, error) {
		return offers, nil
	}}
}

func fareAPIHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bjs", r.URL.Query().Get("origin"))
		assert.Equal(t, "sha", r.URL.Query().Get("destination"))
		assert.Equal(t, "2025-11-21", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"flights": []map[string]any{
				{"flight_number": "CA1501", "airline": "Air China", "departure_time": "08:00", "arrival_time": "10:10", "price": 1280.0, "transfers": 0},
				{"flight_number": "MU5102", "airline": "China Eastern", "departure_time": "09:30", "arrival_time": "14:45", "price": 640.0, "transfers": 1},
				{"flight_number": "BAD1", "airline": "Broken", "price": -10.0, "transfers": 0},
			},
		})
	}
}

// ---- HTTPSource ----

func TestHTTPSource_Search(t *testing.T) {
	srv := httptest.NewServer(fareAPIHandler(t))
	defer srv.Close()

	s := source.NewHTTPSource(srv.URL)
	offers, err := s.Search(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, offers, 2, "malformed record should be skipped")

	assert.Equal(t, "CA1501", offers[0].FlightNumber)
	assert.False(t, offers[0].HasTransfer)
	assert.Equal(t, "bjs", offers[0].Origin)
	assert.Equal(t, "2025-11-21", offers[0].Date)

	assert.True(t, offers[1].HasTransfer)
	assert.Equal(t, 1, offers[1].TransferCount)
}

func TestHTTPSource_Name(t *testing.T) {
	assert.Equal(t, "fares.example.com", source.NewHTTPSource("https://fares.example.com/v1/search").Name())
}

func TestHTTPSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := source.NewHTTPSource(srv.URL).Search(context.Background(), testQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSource_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := source.NewHTTPSource(srv.URL).Search(context.Background(), testQuery)
	require.Error(t, err)
}

// ---- MockSource ----

func TestMockSource_Deterministic(t *testing.T) {
	s := source.NewMockSource(10)

	first, err := s.Search(context.Background(), testQuery)
	require.NoError(t, err)
	second, err := s.Search(context.Background(), testQuery)
	require.NoError(t, err)

	require.Len(t, first, 10)
	assert.Equal(t, first, second)

	other, err := s.Search(context.Background(), source.Query{Origin: "sha", Destination: "tyo", Date: "2025-11-21"})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMockSource_OffersAreValid(t *testing.T) {
	offers, err := source.NewMockSource(0).Search(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, offers, 8)

	require.NoError(t, fare.ValidateAll(offers))
	for _, o := range offers {
		assert.Equal(t, "bjs", o.Origin)
		assert.Equal(t, "sha", o.Destination)
		assert.LessOrEqual(t, o.TransferCount, 2)
	}
}

func TestMockSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewMockSource(3).Search(ctx, testQuery)
	require.ErrorIs(t, err, context.Canceled)
}

// ---- Aggregator ----

func TestAggregator_ConcatenatesInSourceOrder(t *testing.T) {
	slow := &mockSource{name: "slow", searchFn: func(_ context.Context, _ source.Query) ([]fare.Offer, error) {
		time.Sleep(20 * time.Millisecond)
		return []fare.Offer{{FlightNumber: "S1", Price: 1}}, nil
	}}
	fast := fixed("fast", fare.Offer{FlightNumber: "F1", Price: 2}, fare.Offer{FlightNumber: "F2", Price: 3})

	a := source.NewAggregator(time.Second, slow, fast)
	assert.Equal(t, []string{"slow", "fast"}, a.Sources())

	offers, err := a.Search(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "S1", offers[0].FlightNumber)
	assert.Equal(t, "F1", offers[1].FlightNumber)
}

func TestAggregator_FailingSourceIsNonFatal(t *testing.T) {
	failing := &mockSource{name: "down", searchFn: func(_ context.Context, _ source.Query) ([]fare.Offer, error) {
		return nil, errors.New("connection refused")
	}}

	offers, err := source.NewAggregator(time.Second, failing, fixed("up", fare.Offer{FlightNumber: "U1"})).
		Search(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "U1", offers[0].FlightNumber)
}

func TestAggregator_Timeout(t *testing.T) {
	hanging := &mockSource{name: "hang", searchFn: func(ctx context.Context, _ source.Query) ([]fare.Offer, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	start := time.Now()
	offers, err := source.NewAggregator(50*time.Millisecond, hanging).Search(context.Background(), testQuery)
	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAggregator_PanicIsError(t *testing.T) {
	boom := &mockSource{name: "boom", searchFn: func(_ context.Context, _ source.Query) ([]fare.Offer, error) {
		panic("nil map")
	}}

	_, err := source.NewAggregator(time.Second, boom).Search(context.Background(), testQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestAggregator_NoSources(t *testing.T) {
	offers, err := source.NewAggregator(0).Search(context.Background(), testQuery)
	require.NoError(t, err)
	assert.Empty(t, offers)
}
