package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlight_Bookable(t *testing.T) {
	assert.True(t, (&Flight{Status: FlightStatusScheduled}).Bookable())
	assert.True(t, (&Flight{Status: FlightStatusBoarding}).Bookable())
	assert.False(t, (&Flight{Status: FlightStatusDelayed}).Bookable())
	assert.False(t, (&Flight{Status: FlightStatusCancelled}).Bookable())
	assert.False(t, (&Flight{Status: FlightStatusCompleted}).Bookable())
}

func TestFlight_FarePrice(t *testing.T) {
	f := &Flight{EconomyPrice: 100, BusinessPrice: 250, FirstPrice: 500}
	assert.Equal(t, 100.0, f.FarePrice(FareClassEconomy))
	assert.Equal(t, 250.0, f.FarePrice(FareClassBusiness))
	assert.Equal(t, 500.0, f.FarePrice(FareClassFirst))
	// Unknown classes price as economy
	assert.Equal(t, 100.0, f.FarePrice(FareClass("premium")))
}

func TestBooking_Terminal(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).Terminal())
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).Terminal())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).Terminal())
	assert.False(t, (&Booking{Status: BookingStatusMissed}).Terminal())
}

func TestSession_Valid(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Hour)

	assert.True(t, (&Session{ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(-time.Hour)}).Valid(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}).Valid(now))
}
