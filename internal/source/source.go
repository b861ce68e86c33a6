package source

import (
	"context"

	"github.com/neexbeast/farescout/internal/fare"
)

// Query asks a fare source for offers on one route and date.
// Origin and Destination are resolved codes; Date is yyyy-mm-dd.
type Query struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Source is an external provider of fare offers.
type Source interface {
	Name() string
	Search(ctx context.Context, q Query) ([]fare.Offer, error)
}
