package booking

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingPassenger is returned when the passenger name or ID number is blank.
	ErrMissingPassenger = errors.New("passenger name and id number are required")
	// ErrMissingFlight is returned when the flight has no number or endpoints.
	ErrMissingFlight = errors.New("flight number, origin and destination are required")
	// ErrInvalidPrice is returned for a negative or non-finite price.
	ErrInvalidPrice = errors.New("price must be a non-negative number")
	// ErrInvalidDate is returned when the flight date is not yyyy-mm-dd.
	ErrInvalidDate = errors.New("flight date must be yyyy-mm-dd")
)

// DateLayout is the travel date format accepted on bookings.
const DateLayout = "2006-01-02"

// Passenger identifies the traveller on a booking.
type Passenger struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Email    string `json:"email,omitempty"`
}

// Booking is a confirmed seat on a flight for one passenger.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	Passenger Passenger `json:"passenger"`
	Flight    Flight    `json:"flight"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// New validates its inputs and returns a Booking with a fresh ID.
func New(p Passenger, f Flight, price float64) (*Booking, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.IDNumber = strings.TrimSpace(p.IDNumber)
	p.Email = strings.TrimSpace(p.Email)

	if p.Name == "" || p.IDNumber == "" {
		return nil, ErrMissingPassenger
	}
	if f.FlightNumber == "" || f.Origin == "" || f.Destination == "" {
		return nil, ErrMissingFlight
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return nil, fmt.Errorf("booking date %q: %w", f.Date, ErrInvalidDate)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("booking price %v: %w", price, ErrInvalidPrice)
	}

	return &Booking{
		ID:        uuid.New(),
		Passenger: p,
		Flight:    f,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}, nil
}
