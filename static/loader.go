package static

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Load reads both reference tables. Failures degrade to empty maps so that a
// broken static dataset never takes the pipeline down.
func Load(stopsPath, routesPath string, log *slog.Logger) *Data {
	data := &Data{
		Stations: LoadStations(stopsPath, log),
		Routes:   LoadRoutes(routesPath, log),
	}
	log.Info("static reference data loaded",
		slog.Int("stations", len(data.Stations)),
		slog.Int("routes", len(data.Routes)))
	return data
}

// LoadStations parses stops.txt into a stop_id keyed map. Rows missing a
// required column or carrying non-numeric coordinates are skipped. A second
// pass marks a station accessible when any child row referencing it via
// parent_station has wheelchair_boarding set to "1".
func LoadStations(path string, log *slog.Logger) map[string]Station {
	stations := map[string]Station{}
	rows, idx, ok := readTable(path, log)
	if !ok {
		return stations
	}

	for _, row := range rows {
		stopID := getField(row, idx, "stop_id")
		name := getField(row, idx, "stop_name")
		if stopID == "" || name == "" {
			continue
		}
		lat, errLat := strconv.ParseFloat(getField(row, idx, "stop_lat"), 64)
		lon, errLon := strconv.ParseFloat(getField(row, idx, "stop_lon"), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		stations[stopID] = Station{
			StopID:        stopID,
			Name:          name,
			Lat:           lat,
			Lon:           lon,
			LocationType:  getField(row, idx, "location_type"),
			ParentStation: getField(row, idx, "parent_station"),
			Borough:       Borough(stopID),
		}
	}

	// Accessibility pass: any accessible child marks its parent accessible.
	for _, row := range rows {
		parent := getField(row, idx, "parent_station")
		if parent == "" || getField(row, idx, "wheelchair_boarding") != "1" {
			continue
		}
		if st, ok := stations[parent]; ok {
			st.Accessible = true
			stations[parent] = st
		}
	}

	return stations
}

// LoadRoutes parses routes.txt into a route_id keyed map. Colors are
// normalized to "#RRGGBB" with a black fallback.
func LoadRoutes(path string, log *slog.Logger) map[string]Route {
	routes := map[string]Route{}
	rows, idx, ok := readTable(path, log)
	if !ok {
		return routes
	}

	for _, row := range rows {
		routeID := getField(row, idx, "route_id")
		shortName := getField(row, idx, "route_short_name")
		if routeID == "" || shortName == "" {
			continue
		}
		color := "#000000"
		if c := getField(row, idx, "route_color"); c != "" {
			color = "#" + c
		}
		routes[routeID] = Route{
			RouteID:     routeID,
			ShortName:   shortName,
			Description: getField(row, idx, "route_desc"),
			Color:       color,
		}
	}

	return routes
}

// readTable reads a delimited table with a header row, returning all records
// and a column index. ok is false when the file is missing or has no header.
func readTable(path string, log *slog.Logger) ([][]string, map[string]int, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("static table unavailable", slog.String("path", path), slog.String("error", err.Error()))
		return nil, nil, false
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		log.Warn("static table has no header", slog.String("path", path))
		return nil, nil, false
	}
	idx := makeIndex(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, record)
	}
	return rows, idx, true
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
