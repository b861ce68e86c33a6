package booking_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/farescout/internal/booking"
	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/location"
)

func sampleOffer() fare.Offer {
	return fare.Offer{
		FlightNumber: "CA1831", Airline: "Air China", Origin: "bjs", Destination: "sha",
		Date: "2025-11-21", DepartureTime: "09:00", ArrivalTime: "11:10", Price: 1180,
	}
}

func TestFlightFromOffer_Domestic(t *testing.T) {
	f := booking.FlightFromOffer(sampleOffer(), location.Domestic, "approved")

	assert.Equal(t, location.Domestic, f.Kind)
	assert.Equal(t, "Air China", f.Airline)
	assert.Empty(t, f.VisaStatus, "domestic flights carry no visa status")
	assert.Equal(t, "Domestic Flight CA1831 (Air China) from bjs to sha on 2025-11-21", f.Details())
}

func TestFlightFromOffer_International(t *testing.T) {
	o := sampleOffer()
	o.Destination = "tyo"

	f := booking.FlightFromOffer(o, location.International, "")
	assert.Equal(t, location.International, f.Kind)
	assert.Empty(t, f.Airline)
	assert.Equal(t, booking.DefaultVisaStatus, f.VisaStatus)
	assert.Equal(t, "International Flight CA1831 from bjs to tyo on 2025-11-21 [Visa: pending]", f.Details())

	f = booking.NewInternationalFlight("NH920", "sha", "tyo", "2025-11-21", "approved")
	assert.Equal(t, "approved", f.VisaStatus)
}

func TestNew(t *testing.T) {
	f := booking.NewDomesticFlight("CA1831", "bjs", "sha", "2025-11-21", "Air China")

	b, err := booking.New(booking.Passenger{Name: "  Li Wei ", IDNumber: "E1234567"}, f, 1180)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "Li Wei", b.Passenger.Name)
	assert.Equal(t, 1180.0, b.Price)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestNew_Errors(t *testing.T) {
	f := booking.NewDomesticFlight("CA1831", "bjs", "sha", "2025-11-21", "Air China")
	p := booking.Passenger{Name: "Li Wei", IDNumber: "E1234567"}

	_, err := booking.New(booking.Passenger{Name: "Li Wei"}, f, 100)
	require.ErrorIs(t, err, booking.ErrMissingPassenger)

	_, err = booking.New(p, booking.Flight{}, 100)
	require.ErrorIs(t, err, booking.ErrMissingFlight)

	_, err = booking.New(p, f, -1)
	require.ErrorIs(t, err, booking.ErrInvalidPrice)

	for _, date := range []string{"", "next friday", "21-11-2025", "2025-02-30"} {
		undated := booking.NewDomesticFlight("CA1831", "bjs", "sha", date, "Air China")
		_, err = booking.New(p, undated, 100)
		require.ErrorIs(t, err, booking.ErrInvalidDate, "date %q", date)
	}
}

func TestLinks(t *testing.T) {
	domestic := booking.Links("bjs", "sha", "2025-11-21", location.Domestic)
	require.Len(t, domestic, 3)
	assert.Equal(t, "Air China", domestic[0].Airline)

	intl := booking.Links("New York", "sha", "2025-11-21", location.International)
	require.Len(t, intl, 3)
	assert.Equal(t, "Emirates", intl[0].Airline)
	assert.True(t, strings.Contains(intl[0].URL, "orig=New+York"), "parameters are query-escaped: %s", intl[0].URL)
	assert.Contains(t, intl[1].URL, "d=2025-11-21")
}
