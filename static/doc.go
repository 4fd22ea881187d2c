// Package static loads the GTFS static reference tables (stops.txt and
// routes.txt) into in-memory lookup maps used to enrich realtime records.
//
// Loading is forgiving: rows with missing required columns or
// unparseable coordinates are skipped, and a missing file yields an empty
// map rather than an error. The tables are loaded once at startup and are
// read-only for the lifetime of the process.
package static
