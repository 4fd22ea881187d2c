package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripUpdatesFirstFutureStop(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuArrival("101", 1000),
		stuArrival("102", 2000),
	))

	n := NewWithClock(testStations(), clockAt(1500))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1)
	fs := updates[0].FirstFutureStop
	require.NotNil(t, fs)
	assert.Equal(t, "102", fs.StopID)
	assert.Equal(t, int64(2000), fs.Time)
	assert.Equal(t, "238 St", fs.StopName)
	require.NotNil(t, fs.Latitude)
	assert.Equal(t, 40.8848, *fs.Latitude)
	require.NotNil(t, fs.Longitude)
	assert.Equal(t, -73.9007, *fs.Longitude)
}

func TestTripUpdatesArrivalPreferredOverDeparture(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuBoth("101", 3000, 2500),
	))

	n := NewWithClock(testStations(), clockAt(2000))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].FirstFutureStop)
	assert.Equal(t, int64(3000), updates[0].FirstFutureStop.Time)
}

func TestTripUpdatesDepartureFallback(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuDeparture("101", 2500),
	))

	n := NewWithClock(testStations(), clockAt(2000))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].FirstFutureStop)
	assert.Equal(t, int64(2500), updates[0].FirstFutureStop.Time)
}

func TestTripUpdatesNoFutureStop(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuArrival("101", 1000),
		stuArrival("102", 1500), // equal to now: not strictly greater
	))

	n := NewWithClock(testStations(), clockAt(1500))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1, "trip record is still emitted")
	assert.Nil(t, updates[0].FirstFutureStop)
}

func TestTripUpdatesUnknownStopOmitsEnrichment(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuArrival("999", 2000),
	))

	n := NewWithClock(testStations(), clockAt(1500))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1)
	fs := updates[0].FirstFutureStop
	require.NotNil(t, fs)
	assert.Equal(t, "999", fs.StopID)
	assert.Empty(t, fs.StopName)
	assert.Nil(t, fs.Latitude)
	assert.Nil(t, fs.Longitude)
}

func TestTripUpdatesLaterOracleNeverSelectsEarlierStop(t *testing.T) {
	fm := feedWith(tripEntity("e1", trip("trip-1", "1"),
		stuArrival("101", 1000),
		stuArrival("102", 2000),
		stuArrival("127", 3000),
	))

	early := NewWithClock(testStations(), clockAt(500)).TripUpdates(fm)
	late := NewWithClock(testStations(), clockAt(1500)).TripUpdates(fm)

	require.NotNil(t, early[0].FirstFutureStop)
	require.NotNil(t, late[0].FirstFutureStop)
	assert.Equal(t, "101", early[0].FirstFutureStop.StopID)
	assert.Equal(t, "102", late[0].FirstFutureStop.StopID)
	assert.GreaterOrEqual(t, late[0].FirstFutureStop.Time, early[0].FirstFutureStop.Time)
}

func TestTripUpdatesDirection(t *testing.T) {
	fm := feedWith(
		tripEntity("e1", tripWithDirection("trip-1", "1", 0)),
		tripEntity("e2", tripWithDirection("trip-2", "1", 1)),
		tripEntity("e3", trip("trip-3", "1")),
	)

	n := NewWithClock(testStations(), clockAt(0))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 3)
	require.NotNil(t, updates[0].Direction)
	assert.Equal(t, Northbound, *updates[0].Direction)
	require.NotNil(t, updates[1].Direction)
	assert.Equal(t, Southbound, *updates[1].Direction)
	assert.Nil(t, updates[2].Direction, "absent direction_id stays null, not defaulted")
}

func TestTripUpdatesScheduleFields(t *testing.T) {
	td := trip("trip-1", "1")
	startTime := "06:30:00"
	startDate := "20260831"
	td.StartTime = &startTime
	td.StartDate = &startDate
	fm := feedWith(tripEntity("e1", td))

	n := NewWithClock(testStations(), clockAt(0))
	updates := n.TripUpdates(fm)

	require.Len(t, updates, 1)
	assert.Equal(t, "trip-1", updates[0].TripID)
	assert.Equal(t, "1", updates[0].RouteID)
	assert.Equal(t, "06:30:00", updates[0].StartTime)
	assert.Equal(t, "20260831", updates[0].StartDate)
}
