// Package normalize maps decoded GTFS-Realtime feed messages onto the small
// record set this system persists and serves: trip updates with their first
// future stop, scoped alerts, and per-stop arrivals.
//
// A Normalizer carries the injected static reference data and a clock so that
// every derivation is deterministic under test. Records are recomputed from
// scratch on every run; there is no incremental merge.
package normalize
