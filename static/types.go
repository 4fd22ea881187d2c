package static

// Station is one row of stops.txt, keyed by stop_id.
type Station struct {
	StopID        string
	Name          string
	Lat           float64
	Lon           float64
	LocationType  string
	ParentStation string
	Borough       string
	Accessible    bool
}

// Route is one row of routes.txt, keyed by route_id.
type Route struct {
	RouteID     string
	ShortName   string
	Description string
	Color       string
}

// Data holds both reference tables.
type Data struct {
	Stations map[string]Station
	Routes   map[string]Route
}

// IsParent reports whether the station is a parent station (location_type 1),
// i.e. a station proper rather than a platform or entrance.
func (s Station) IsParent() bool {
	return s.LocationType == "1"
}
