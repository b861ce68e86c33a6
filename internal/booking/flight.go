package booking

import (
	"fmt"

	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/location"
)

// DefaultVisaStatus is recorded for international flights booked without one.
const DefaultVisaStatus = "pending"

// Flight is a booked flight. Kind selects the variant: Domestic flights carry
// Airline, International flights carry VisaStatus.
type Flight struct {
	Kind         location.RouteType `json:"kind"`
	FlightNumber string             `json:"flight_number"`
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	Date         string             `json:"date"`
	Airline      string             `json:"airline,omitempty"`
	VisaStatus   string             `json:"visa_status,omitempty"`
}

// NewDomesticFlight builds the domestic variant.
func NewDomesticFlight(flightNumber, origin, destination, date, airline string) Flight {
	return Flight{
		Kind:         location.Domestic,
		FlightNumber: flightNumber,
		Origin:       origin,
		Destination:  destination,
		Date:         date,
		Airline:      airline,
	}
}

// NewInternationalFlight builds the international variant.
func NewInternationalFlight(flightNumber, origin, destination, date, visaStatus string) Flight {
	if visaStatus == "" {
		visaStatus = DefaultVisaStatus
	}
	return Flight{
		Kind:         location.International,
		FlightNumber: flightNumber,
		Origin:       origin,
		Destination:  destination,
		Date:         date,
		VisaStatus:   visaStatus,
	}
}

// FlightFromOffer builds the variant matching kind from a fare offer.
// visaStatus is ignored for domestic flights.
func FlightFromOffer(o fare.Offer, kind location.RouteType, visaStatus string) Flight {
	if kind == location.Domestic {
		return NewDomesticFlight(o.FlightNumber, o.Origin, o.Destination, o.Date, o.Airline)
	}
	return NewInternationalFlight(o.FlightNumber, o.Origin, o.Destination, o.Date, visaStatus)
}

// Details returns a one-line human summary.
func (f Flight) Details() string {
	if f.Kind == location.Domestic {
		return fmt.Sprintf("Domestic Flight %s (%s) from %s to %s on %s",
			f.FlightNumber, f.Airline, f.Origin, f.Destination, f.Date)
	}
	return fmt.Sprintf("International Flight %s from %s to %s on %s [Visa: %s]",
		f.FlightNumber, f.Origin, f.Destination, f.Date, f.VisaStatus)
}
