package normalize

import (
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/subwaylive/mta-ingest/static"
)

func testStations() *static.Data {
	return &static.Data{
		Stations: map[string]static.Station{
			"101": {StopID: "101", Name: "Van Cortlandt Park-242 St", Lat: 40.8892, Lon: -73.8985},
			"102": {StopID: "102", Name: "238 St", Lat: 40.8848, Lon: -73.9007},
			"127": {StopID: "127", Name: "Times Sq-42 St", Lat: 40.7555, Lon: -73.9876},
		},
		Routes: map[string]static.Route{
			"1": {RouteID: "1", ShortName: "1"},
		},
	}
}

func clockAt(epoch int64) func() time.Time {
	return func() time.Time { return time.Unix(epoch, 0) }
}

func feedWith(entities ...*gtfsrtpb.FeedEntity) *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: entities,
	}
}

func tripEntity(id string, trip *gtfsrtpb.TripDescriptor, stus ...*gtfsrtpb.TripUpdate_StopTimeUpdate) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(id),
		TripUpdate: &gtfsrtpb.TripUpdate{
			Trip:           trip,
			StopTimeUpdate: stus,
		},
	}
}

func trip(tripID, routeID string) *gtfsrtpb.TripDescriptor {
	return &gtfsrtpb.TripDescriptor{
		TripId:  proto.String(tripID),
		RouteId: proto.String(routeID),
	}
}

func tripWithDirection(tripID, routeID string, direction uint32) *gtfsrtpb.TripDescriptor {
	td := trip(tripID, routeID)
	td.DirectionId = proto.Uint32(direction)
	return td
}

func stuArrival(stopID string, arrival int64) *gtfsrtpb.TripUpdate_StopTimeUpdate {
	return &gtfsrtpb.TripUpdate_StopTimeUpdate{
		StopId:  proto.String(stopID),
		Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(arrival)},
	}
}

func stuDeparture(stopID string, departure int64) *gtfsrtpb.TripUpdate_StopTimeUpdate {
	return &gtfsrtpb.TripUpdate_StopTimeUpdate{
		StopId:    proto.String(stopID),
		Departure: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(departure)},
	}
}

func stuBoth(stopID string, arrival, departure int64) *gtfsrtpb.TripUpdate_StopTimeUpdate {
	stu := stuArrival(stopID, arrival)
	stu.Departure = &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(departure)}
	return stu
}

func alertEntity(id, header, description string, informed ...*gtfsrtpb.EntitySelector) *gtfsrtpb.FeedEntity {
	alert := &gtfsrtpb.Alert{InformedEntity: informed}
	if header != "" {
		alert.HeaderText = translated(header)
	}
	if description != "" {
		alert.DescriptionText = translated(description)
	}
	return &gtfsrtpb.FeedEntity{
		Id:    proto.String(id),
		Alert: alert,
	}
}

func translated(text string) *gtfsrtpb.TranslatedString {
	return &gtfsrtpb.TranslatedString{
		Translation: []*gtfsrtpb.TranslatedString_Translation{
			{Text: proto.String(text)},
		},
	}
}

func activePeriod(start, end uint64) *gtfsrtpb.TimeRange {
	return &gtfsrtpb.TimeRange{Start: proto.Uint64(start), End: proto.Uint64(end)}
}

func informedRoute(routeID string) *gtfsrtpb.EntitySelector {
	return &gtfsrtpb.EntitySelector{RouteId: proto.String(routeID)}
}

func informedStop(stopID string) *gtfsrtpb.EntitySelector {
	return &gtfsrtpb.EntitySelector{StopId: proto.String(stopID)}
}
