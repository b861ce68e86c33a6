package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/farescout/internal/booking"
	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/location"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Search is a stored fare search: the resolved route and its ranked offers.
type Search struct {
	ID              uuid.UUID          `json:"id"`
	OriginCode      string             `json:"origin_code"`
	DestinationCode string             `json:"destination_code"`
	Date            string             `json:"date"`
	RouteType       location.RouteType `json:"route_type"`
	Result          fare.Result        `json:"result"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Repository provides database access for fare searches and bookings.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// ---- fare searches ----

// SaveSearch inserts s, assigning an ID and creation time when unset.
func (r *Repository) SaveSearch(ctx context.Context, s *Search) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	offers := s.Result.Offers
	if offers == nil {
		offers = []fare.Offer{}
	}
	offersJSON, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshaling offers for search %s: %w", s.ID, err)
	}

	var bestJSON []byte
	if s.Result.Best != nil {
		if bestJSON, err = json.Marshal(s.Result.Best); err != nil {
			return fmt.Errorf("marshaling best offer for search %s: %w", s.ID, err)
		}
	}

	const q = `
		INSERT INTO fare_searches (id, origin_code, destination_code, travel_date, route_type, offers, best, created_at)
		VALUES ($1::uuid, $2, $3, $4::date, $5, $6, $7, $8)
	`

	if _, err := r.q.Exec(ctx, q,
		s.ID.String(), s.OriginCode, s.DestinationCode, s.Date, s.RouteType.String(), offersJSON, bestJSON, s.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting search %s: %w", s.ID, err)
	}

	return nil
}

const searchColumns = `id::text, origin_code, destination_code, travel_date::text, route_type, offers, best, created_at`

// GetSearch retrieves a search by ID.
// Returns nil, nil when the search is not found.
func (r *Repository) GetSearch(ctx context.Context, id uuid.UUID) (*Search, error) {
	q := `SELECT ` + searchColumns + ` FROM fare_searches WHERE id = $1::uuid`

	s, err := scanSearch(r.q.QueryRow(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying search %s: %w", id, err)
	}
	return s, nil
}

// ListSearchesByRoute returns the most recent searches for a route, newest first.
func (r *Repository) ListSearchesByRoute(ctx context.Context, origin, destination string, limit int) ([]*Search, error) {
	if limit <= 0 {
		limit = 20
	}

	q := `SELECT ` + searchColumns + `
		FROM fare_searches
		WHERE origin_code = $1 AND destination_code = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, q, origin, destination, limit)
	if err != nil {
		return nil, fmt.Errorf("querying searches for %s-%s: %w", origin, destination, err)
	}
	defer rows.Close()

	var results []*Search
	for rows.Next() {
		s, err := scanSearch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search rows: %w", err)
	}

	return results, nil
}

func scanSearch(row pgx.Row) (*Search, error) {
	var (
		s          Search
		id         string
		routeType  string
		offersJSON []byte
		bestJSON   []byte
	)

	if err := row.Scan(&id, &s.OriginCode, &s.DestinationCode, &s.Date, &routeType, &offersJSON, &bestJSON, &s.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if s.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing search id %q: %w", id, err)
	}
	if s.RouteType, err = location.ParseRouteType(routeType); err != nil {
		return nil, fmt.Errorf("search %s: %w", id, err)
	}
	if err := json.Unmarshal(offersJSON, &s.Result.Offers); err != nil {
		return nil, fmt.Errorf("unmarshaling offers for search %s: %w", id, err)
	}
	if len(bestJSON) > 0 {
		var best fare.Offer
		if err := json.Unmarshal(bestJSON, &best); err != nil {
			return nil, fmt.Errorf("unmarshaling best offer for search %s: %w", id, err)
		}
		s.Result.Best = &best
	}

	return &s, nil
}

// ---- bookings ----

// SaveBooking inserts b.
func (r *Repository) SaveBooking(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (
			id, passenger_name, passenger_id_number, passenger_email,
			route_type, flight_number, airline, visa_status,
			origin_code, destination_code, travel_date, price, created_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12, $13)
	`

	if _, err := r.q.Exec(ctx, q,
		b.ID.String(), b.Passenger.Name, b.Passenger.IDNumber, b.Passenger.Email,
		b.Flight.Kind.String(), b.Flight.FlightNumber, b.Flight.Airline, b.Flight.VisaStatus,
		b.Flight.Origin, b.Flight.Destination, b.Flight.Date, b.Price, b.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting booking %s: %w", b.ID, err)
	}

	return nil
}

// GetBooking retrieves a booking by ID and rebuilds its flight variant.
// Returns nil, nil when the booking is not found.
func (r *Repository) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id::text, passenger_name, passenger_id_number, passenger_email,
		       route_type, flight_number, airline, visa_status,
		       origin_code, destination_code, travel_date::text, price, created_at
		FROM bookings
		WHERE id = $1::uuid
	`

	var (
		b                                 booking.Booking
		rawID, routeType                  string
		flightNumber, airline, visaStatus string
		origin, destination, date         string
	)

	err := r.q.QueryRow(ctx, q, id.String()).Scan(
		&rawID, &b.Passenger.Name, &b.Passenger.IDNumber, &b.Passenger.Email,
		&routeType, &flightNumber, &airline, &visaStatus,
		&origin, &destination, &date, &b.Price, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying booking %s: %w", id, err)
	}

	if b.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("parsing booking id %q: %w", rawID, err)
	}
	kind, err := location.ParseRouteType(routeType)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", rawID, err)
	}

	if kind == location.Domestic {
		b.Flight = booking.NewDomesticFlight(flightNumber, origin, destination, date, airline)
	} else {
		b.Flight = booking.NewInternationalFlight(flightNumber, origin, destination, date, visaStatus)
	}

	return &b, nil
}
