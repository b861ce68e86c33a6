package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/farescout/internal/fare"
)

const defaultSourceTimeout = 10 * time.Second

// Aggregator queries several sources in parallel and concatenates their offers.
type Aggregator struct {
	sources []Source
	timeout time.Duration
}

// NewAggregator constructs an Aggregator. A non-positive timeout falls back to 10s.
func NewAggregator(timeout time.Duration, sources ...Source) *Aggregator {
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}
	return &Aggregator{sources: sources, timeout: timeout}
}

// Sources returns the names of the configured sources in query order.
func (a *Aggregator) Sources() []string {
	names := make([]string, len(a.sources))
	for i, s := range a.sources {
		names[i] = s.Name()
	}
	return names
}

// Search fetches offers from every source in parallel using errgroup.
// Source failures are non-fatal: their offers are dropped and the failure logged.
// Offers are returned grouped in source order.
func (a *Aggregator) Search(ctx context.Context, q Query) ([]fare.Offer, error) {
	g, gCtx := errgroup.WithContext(ctx)
	results := make([][]fare.Offer, len(a.sources))

	for i, s := range a.sources {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("fare source panicked", "source", s.Name(), "recover", r)
					err = fmt.Errorf("fare source %s panicked: %v", s.Name(), r)
				}
			}()

			sCtx, cancel := context.WithTimeout(gCtx, a.timeout)
			defer cancel()

			offers, searchErr := s.Search(sCtx, q)
			if searchErr != nil {
				slog.Warn("fare source failed", "source", s.Name(), "origin", q.Origin, "destination", q.Destination, "err", searchErr)
				return nil
			}
			results[i] = offers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("searching fares %s-%s: %w", q.Origin, q.Destination, err)
	}

	var all []fare.Offer
	for _, offers := range results {
		all = append(all, offers...)
	}
	return all, nil
}
