package static

import (
	"strconv"
	"strings"
)

// Borough infers a borough from MTA stop id conventions. Numbered and
// lettered IRT/IND prefixes carry a numeric suffix whose range maps to a
// borough; single-letter prefixes map to fixed boroughs. The heuristic is
// best-effort and returns "Unknown" for anything it cannot place, including
// non-numeric suffixes.
func Borough(stopID string) string {
	if stopID == "" {
		return "Unknown"
	}
	switch {
	case strings.ContainsAny(stopID[:1], "123456ABCD"):
		n, err := strconv.Atoi(stopID[1:])
		if err != nil {
			return "Unknown"
		}
		switch {
		case n < 200:
			return "Manhattan"
		case n < 400:
			return "Bronx"
		default:
			return "Brooklyn"
		}
	case strings.HasPrefix(stopID, "N"):
		return "Queens"
	case strings.HasPrefix(stopID, "S"):
		return "Staten Island"
	case strings.HasPrefix(stopID, "G"):
		return "Brooklyn"
	default:
		return "Unknown"
	}
}

// DocID derives the stable document key used for a station in the external
// store: "{name}_{stop_id}" lowercased with spaces, dashes and slashes
// replaced by underscores.
func DocID(name, stopID string) string {
	id := strings.ToLower(name + "_" + stopID)
	replacer := strings.NewReplacer(" ", "_", "-", "_", "/", "_")
	return replacer.Replace(id)
}
