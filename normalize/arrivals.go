package normalize

import (
	"sort"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Arrivals extracts one record per stop-time update carrying an arrival
// field, across every trip-update entity of the message. An optional stop
// filter restricts the output to a single stop. Records are ordered
// ascending by timestamp.
func (n *Normalizer) Arrivals(fm *gtfsrtpb.FeedMessage, stopFilter string) []Arrival {
	if fm == nil {
		return nil
	}

	var arrivals []Arrival
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil {
			continue
		}
		trip := tu.Trip

		direction := Unknown
		if trip.DirectionId != nil {
			direction = DirectionFromID(trip.GetDirectionId())
		}

		for _, stu := range tu.StopTimeUpdate {
			stopID := stu.GetStopId()
			if stopFilter != "" && stopID != stopFilter {
				continue
			}
			if stu.Arrival == nil || stu.Arrival.Time == nil {
				continue
			}
			ts := stu.Arrival.GetTime()
			arrivals = append(arrivals, Arrival{
				Route:       trip.GetRouteId(),
				TripID:      trip.GetTripId(),
				StopID:      stopID,
				Direction:   direction,
				ArrivalTime: time.Unix(ts, 0).Format("15:04:05"),
				Timestamp:   ts,
			})
		}
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].Timestamp < arrivals[j].Timestamp
	})
	return arrivals
}
