package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/neexbeast/farescout/internal/booking"
	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/source"
	"github.com/neexbeast/farescout/internal/storage"
)

// FareStore defines the storage operations needed by handlers.
type FareStore interface {
	SaveSearch(ctx context.Context, s *storage.Search) error
	GetSearch(ctx context.Context, id uuid.UUID) (*storage.Search, error)
	ListSearchesByRoute(ctx context.Context, origin, destination string, limit int) ([]*storage.Search, error)
	SaveBooking(ctx context.Context, b *booking.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// FareCache defines the cache operations needed by handlers.
type FareCache interface {
	Get(ctx context.Context, origin, destination, date string) (*fare.Result, error)
	Set(ctx context.Context, origin, destination, date string, res *fare.Result) error
	Delete(ctx context.Context, origin, destination, date string) error
}

// FareSearcher defines the fare source aggregation needed by handlers.
type FareSearcher interface {
	Search(ctx context.Context, q source.Query) ([]fare.Offer, error)
}

// Pinger is satisfied by anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
