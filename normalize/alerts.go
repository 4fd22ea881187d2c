package normalize

import (
	"sort"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

const (
	textNotAvailable = "N/A"
	defaultAlertType = "Service Change"
)

// Alerts fans every alert entity of a feed message out into scoped records.
// An alert naming no stops becomes one system-wide record; otherwise one
// record per distinct affected stop is emitted, all sharing the same header,
// description, type and affected routes.
func (n *Normalizer) Alerts(fm *gtfsrtpb.FeedMessage) []Alert {
	if fm == nil {
		return nil
	}

	var alerts []Alert
	for _, e := range fm.Entity {
		a := e.Alert
		if a == nil {
			continue
		}

		header := textNotAvailable
		alertType := defaultAlertType
		if t := firstTranslation(a.HeaderText); t != "" {
			header = t
			if prefix, _, found := strings.Cut(header, ":"); found {
				alertType = prefix
			} else {
				alertType = header
			}
		}
		description := textNotAvailable
		if t := firstTranslation(a.DescriptionText); t != "" {
			description = t
		}

		var routes []string
		seenRoutes := map[string]struct{}{}
		stops := map[string]struct{}{}
		for _, ie := range a.InformedEntity {
			if rid := ie.GetRouteId(); rid != "" {
				if _, ok := seenRoutes[rid]; !ok {
					seenRoutes[rid] = struct{}{}
					routes = append(routes, rid)
				}
			}
			if ie.StopId != nil {
				stops[ie.GetStopId()] = struct{}{}
			}
		}

		base := Alert{
			AlertType:      alertType,
			Header:         header,
			Description:    description,
			AffectedRoutes: routes,
			Active:         true,
		}

		if len(stops) == 0 {
			base.StationID = ScopeSystemWide
			alerts = append(alerts, base)
			continue
		}
		for _, stopID := range sortedKeys(stops) {
			record := base
			record.StationID = StopScope(stopID)
			alerts = append(alerts, record)
		}
	}
	return alerts
}

// SampleAlerts is the documented fallback used when a whole fetch cycle
// yields zero alerts across all feed groups, so downstream consumers always
// observe at least one entry. It is a placeholder, not a real alert.
func SampleAlerts() []Alert {
	return []Alert{
		{
			StationID:      "times_square_127",
			AlertType:      "Delays",
			Header:         "Delays on 1,2,3 lines",
			Description:    "Expect delays due to signal problems.",
			AffectedRoutes: []string{"1", "2", "3"},
			Active:         true,
		},
	}
}

// AlertSummaries builds the unscoped alert view served by the status surface.
func (n *Normalizer) AlertSummaries(fm *gtfsrtpb.FeedMessage) []AlertSummary {
	if fm == nil {
		return nil
	}

	var summaries []AlertSummary
	for _, e := range fm.Entity {
		a := e.Alert
		if a == nil {
			continue
		}
		s := AlertSummary{
			Header:      textNotAvailable,
			Description: textNotAvailable,
		}
		if t := firstTranslation(a.HeaderText); t != "" {
			s.Header = t
		}
		if t := firstTranslation(a.DescriptionText); t != "" {
			s.Description = t
		}
		for _, p := range a.ActivePeriod {
			s.ActivePeriods = append(s.ActivePeriods, ActivePeriod{
				Start: int64(p.GetStart()),
				End:   int64(p.GetEnd()),
			})
		}
		for _, ie := range a.InformedEntity {
			s.InformedEntities = append(s.InformedEntities, InformedEntity{
				RouteID: ie.GetRouteId(),
				StopID:  ie.GetStopId(),
			})
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func firstTranslation(ts *gtfsrtpb.TranslatedString) string {
	if ts == nil || len(ts.Translation) == 0 {
		return ""
	}
	return ts.Translation[0].GetText()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
