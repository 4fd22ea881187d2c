package normalize

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// TripUpdates maps every trip-update entity of a feed message to a record.
// A trip with no stop event strictly after the current instant still yields
// a record, with FirstFutureStop nil.
func (n *Normalizer) TripUpdates(fm *gtfsrtpb.FeedMessage) []TripUpdate {
	if fm == nil {
		return nil
	}
	now := n.now().Unix()

	var updates []TripUpdate
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil {
			continue
		}
		trip := tu.Trip

		record := TripUpdate{
			TripID:          trip.GetTripId(),
			RouteID:         trip.GetRouteId(),
			StartTime:       trip.GetStartTime(),
			StartDate:       trip.GetStartDate(),
			FirstFutureStop: n.firstFutureStop(tu.StopTimeUpdate, now),
		}
		if trip.DirectionId != nil {
			d := DirectionFromID(trip.GetDirectionId())
			record.Direction = &d
		}
		updates = append(updates, record)
	}
	return updates
}

// firstFutureStop scans stop-time updates in feed order and returns the first
// whose event time is strictly in the future. Arrival time wins over
// departure time when both are present; the scan stops at the first match.
func (n *Normalizer) firstFutureStop(stus []*gtfsrtpb.TripUpdate_StopTimeUpdate, now int64) *FutureStop {
	for _, stu := range stus {
		var eventTime int64
		if stu.Arrival != nil && stu.Arrival.GetTime() > 0 {
			eventTime = stu.Arrival.GetTime()
		} else if stu.Departure != nil && stu.Departure.GetTime() > 0 {
			eventTime = stu.Departure.GetTime()
		}
		if eventTime == 0 || eventTime <= now {
			continue
		}

		fs := &FutureStop{
			StopID: stu.GetStopId(),
			Time:   eventTime,
		}
		if st, ok := n.static.Stations[fs.StopID]; ok {
			lat, lon := st.Lat, st.Lon
			fs.StopName = st.Name
			fs.Latitude = &lat
			fs.Longitude = &lon
		}
		return fs
	}
	return nil
}
