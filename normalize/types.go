package normalize

// Direction is the derived direction of travel for a trip.
type Direction string

const (
	Northbound Direction = "Northbound"
	Southbound Direction = "Southbound"
	Unknown    Direction = "Unknown"
)

// DirectionFromID maps a GTFS direction_id to a Direction.
func DirectionFromID(id uint32) Direction {
	switch id {
	case 0:
		return Northbound
	case 1:
		return Southbound
	default:
		return Unknown
	}
}

// FutureStop is the first stop event of a trip that lies strictly in the
// future, enriched with station geodata when the stop is known.
type FutureStop struct {
	StopID    string   `json:"stop_id" firestore:"stop_id"`
	Time      int64    `json:"time" firestore:"time"`
	StopName  string   `json:"stop_name,omitempty" firestore:"stop_name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`
}

// TripUpdate is the normalized record for one trip-update entity.
type TripUpdate struct {
	TripID          string      `json:"trip_id" firestore:"trip_id"`
	RouteID         string      `json:"route_id" firestore:"route_id"`
	StartTime       string      `json:"start_time" firestore:"start_time"`
	StartDate       string      `json:"start_date" firestore:"start_date"`
	Direction       *Direction  `json:"direction" firestore:"direction"`
	FirstFutureStop *FutureStop `json:"first_future_stop" firestore:"first_future_stop"`
}

// Alert is one scoped alert record. An alert affecting no stops yields a
// single record scoped ScopeSystemWide; an alert affecting stops yields one
// record per stop, all sharing header, description, type and routes.
type Alert struct {
	StationID      string   `json:"station_id" firestore:"station_id"`
	AlertType      string   `json:"alert_type" firestore:"alert_type"`
	Header         string   `json:"alert_header" firestore:"alert_header"`
	Description    string   `json:"alert_description" firestore:"alert_description"`
	AffectedRoutes []string `json:"affected_routes" firestore:"affected_routes"`
	Active         bool     `json:"active" firestore:"active"`
}

// ScopeSystemWide is the scope key for alerts that name no specific stop.
const ScopeSystemWide = "system_wide"

// StopScope derives the per-stop scope key for an alert record.
func StopScope(stopID string) string {
	return "stop_" + stopID
}

// Arrival is one predicted arrival event at a stop, extracted from a
// trip-update stop-time entry that carries an arrival field.
type Arrival struct {
	Route       string    `json:"route" firestore:"route"`
	TripID      string    `json:"trip_id" firestore:"trip_id"`
	StopID      string    `json:"stop_id" firestore:"stop_id"`
	Direction   Direction `json:"direction" firestore:"direction"`
	ArrivalTime string    `json:"arrival_time" firestore:"arrival_time"`
	Timestamp   int64     `json:"timestamp" firestore:"timestamp"`
}

// ActivePeriod is one start/end window of an alert.
type ActivePeriod struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// InformedEntity is one route/stop reference within an alert.
type InformedEntity struct {
	RouteID string `json:"route_id"`
	StopID  string `json:"stop_id"`
}

// AlertSummary is the unscoped view of an alert served by the status surface.
type AlertSummary struct {
	Header           string           `json:"header"`
	Description      string           `json:"description"`
	ActivePeriods    []ActivePeriod   `json:"active_period"`
	InformedEntities []InformedEntity `json:"informed_entities"`
}
