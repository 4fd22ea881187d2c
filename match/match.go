// Package match derives, for each station, the set of routes currently
// observed serving it from the normalized arrival records.
package match

import (
	"sort"

	"github.com/subwaylive/mta-ingest/normalize"
	"github.com/subwaylive/mta-ingest/static"
)

// StationRoutes returns the distinct route ids observed at each station,
// keyed by stop_id and sorted for deterministic output. Stations with no
// matching arrivals are absent from the result; downstream documents omit
// the routes field entirely rather than carrying an empty list.
func StationRoutes(stations map[string]static.Station, arrivals []normalize.Arrival) map[string][]string {
	sets := map[string]map[string]struct{}{}
	for _, a := range arrivals {
		if _, ok := stations[a.StopID]; !ok {
			continue
		}
		if sets[a.StopID] == nil {
			sets[a.StopID] = map[string]struct{}{}
		}
		sets[a.StopID][a.Route] = struct{}{}
	}

	routes := make(map[string][]string, len(sets))
	for stopID, set := range sets {
		list := make([]string, 0, len(set))
		for r := range set {
			list = append(list, r)
		}
		sort.Strings(list)
		routes[stopID] = list
	}
	return routes
}
