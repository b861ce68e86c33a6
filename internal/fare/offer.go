package fare

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativePrice is returned for a price below zero, NaN or infinite.
	ErrNegativePrice = errors.New("price must be a non-negative number")
	// ErrNegativeTransfers is returned for a transfer count below zero.
	ErrNegativeTransfers = errors.New("transfer count must not be negative")
	// ErrTransferMismatch is returned when HasTransfer disagrees with TransferCount.
	ErrTransferMismatch = errors.New("has_transfer and transfer_count disagree")
)

// Offer is one priced flight for a route and date, as produced by a fare source.
type Offer struct {
	FlightNumber  string  `json:"flight_number"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Date          string  `json:"date"`
	HasTransfer   bool    `json:"has_transfer"`
	TransferCount int     `json:"transfer_count"`
}

// NewOffer validates o and returns it.
func NewOffer(o Offer) (Offer, error) {
	if err := o.Validate(); err != nil {
		return Offer{}, err
	}
	return o, nil
}

// Validate checks the price and transfer invariants.
func (o Offer) Validate() error {
	if math.IsNaN(o.Price) || math.IsInf(o.Price, 0) || o.Price < 0 {
		return fmt.Errorf("offer %s: %w", o.FlightNumber, ErrNegativePrice)
	}
	if o.TransferCount < 0 {
		return fmt.Errorf("offer %s: %w", o.FlightNumber, ErrNegativeTransfers)
	}
	if o.HasTransfer != (o.TransferCount > 0) {
		return fmt.Errorf("offer %s: %w", o.FlightNumber, ErrTransferMismatch)
	}
	return nil
}

// ValidateAll returns the first validation error among offers, annotated with its index.
func ValidateAll(offers []Offer) error {
	for i, o := range offers {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("offers[%d]: %w", i, err)
		}
	}
	return nil
}

// Direct reports whether the offer has no transfers.
func (o Offer) Direct() bool {
	return !o.HasTransfer
}

func (o Offer) String() string {
	transfers := " (Direct)"
	if o.HasTransfer {
		plural := ""
		if o.TransferCount > 1 {
			plural = "s"
		}
		transfers = fmt.Sprintf(" (%d transfer%s)", o.TransferCount, plural)
	}
	return fmt.Sprintf("%s %s: %s → %s | %s - %s | ¥%.2f%s",
		o.Airline, o.FlightNumber, o.Origin, o.Destination,
		o.DepartureTime, o.ArrivalTime, o.Price, transfers)
}
