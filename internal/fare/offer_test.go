package fare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/farescout/internal/fare"
)

func TestOffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		offer   fare.Offer
		wantErr error
	}{
		{"direct", fare.Offer{Price: 100}, nil},
		{"free", fare.Offer{Price: 0}, nil},
		{"one transfer", fare.Offer{Price: 100, HasTransfer: true, TransferCount: 1}, nil},
		{"negative price", fare.Offer{Price: -1}, fare.ErrNegativePrice},
		{"NaN price", fare.Offer{Price: math.NaN()}, fare.ErrNegativePrice},
		{"infinite price", fare.Offer{Price: math.Inf(1)}, fare.ErrNegativePrice},
		{"negative transfers", fare.Offer{Price: 1, TransferCount: -1}, fare.ErrNegativeTransfers},
		{"direct with transfers", fare.Offer{Price: 1, TransferCount: 2}, fare.ErrTransferMismatch},
		{"transfer flag without count", fare.Offer{Price: 1, HasTransfer: true}, fare.ErrTransferMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.offer.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewOffer(t *testing.T) {
	o, err := fare.NewOffer(fare.Offer{FlightNumber: "CA1501", Price: 1200})
	require.NoError(t, err)
	assert.Equal(t, "CA1501", o.FlightNumber)
	assert.True(t, o.Direct())

	_, err = fare.NewOffer(fare.Offer{FlightNumber: "CA1501", Price: -5})
	require.ErrorIs(t, err, fare.ErrNegativePrice)
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, fare.ValidateAll(nil))

	err := fare.ValidateAll([]fare.Offer{{Price: 1}, {Price: 1, HasTransfer: true}})
	require.ErrorIs(t, err, fare.ErrTransferMismatch)
	assert.Contains(t, err.Error(), "offers[1]")
}

func TestOffer_String(t *testing.T) {
	o := fare.Offer{
		FlightNumber: "MU5101", Airline: "China Eastern", Origin: "sha", Destination: "bjs",
		DepartureTime: "08:00", ArrivalTime: "10:15", Price: 980,
	}
	assert.Equal(t, "China Eastern MU5101: sha → bjs | 08:00 - 10:15 | ¥980.00 (Direct)", o.String())

	o.HasTransfer, o.TransferCount = true, 2
	assert.Contains(t, o.String(), "(2 transfers)")
}
