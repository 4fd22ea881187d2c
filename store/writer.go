package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/subwaylive/mta-ingest/normalize"
	"github.com/subwaylive/mta-ingest/static"
)

// MaxBatchOps is the commit threshold. The store rejects batches above 500
// operations.
const MaxBatchOps = 450

// arrivalsPerRoute caps how many upcoming arrivals are kept per
// (stop, route) pair.
const arrivalsPerRoute = 3

// Writer persists normalized record collections in batched writes. It keeps
// one running batch across calls; callers must Flush when done. Commit errors
// propagate so the caller can decide whether to re-run the whole pipeline.
type Writer struct {
	store Store
	log   *slog.Logger

	batch Batch
	ops   int
}

// NewWriter creates a Writer over the given store.
func NewWriter(s Store, log *slog.Logger) *Writer {
	return &Writer{store: s, log: log}
}

func (w *Writer) add(ctx context.Context, op func(Batch)) error {
	if w.batch == nil {
		w.batch = w.store.NewBatch()
	}
	op(w.batch)
	w.ops++
	if w.ops >= MaxBatchOps {
		return w.Flush(ctx)
	}
	return nil
}

// Flush commits the running batch, if any.
func (w *Writer) Flush(ctx context.Context) error {
	if w.ops == 0 {
		return nil
	}
	err := w.batch.Commit(ctx)
	w.batch = nil
	w.ops = 0
	if err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// PutStations upserts one document per parent station, keyed by the derived
// station doc id. Stations with observed routes carry a routes field; the
// field is omitted otherwise.
func (w *Writer) PutStations(ctx context.Context, stations map[string]static.Station, routesByStop map[string][]string) error {
	w.log.Info("writing stations", slog.Int("count", len(stations)))
	for _, stopID := range sortedStationKeys(stations) {
		st := stations[stopID]
		if !st.IsParent() {
			continue
		}
		doc := map[string]any{
			"station_code":  st.StopID,
			"station_name":  st.Name,
			"station_type":  "subway",
			"is_accessible": st.Accessible,
			"borough":       st.Borough,
			"location": map[string]any{
				"latitude":  st.Lat,
				"longitude": st.Lon,
			},
		}
		if routes, ok := routesByStop[st.StopID]; ok {
			doc["routes"] = routes
		}
		docID := static.DocID(st.Name, st.StopID)
		if err := w.add(ctx, func(b Batch) { b.Set(CollectionStations, docID, doc) }); err != nil {
			return err
		}
	}
	return nil
}

// PutRoutes upserts one document per route, keyed by route_id.
func (w *Writer) PutRoutes(ctx context.Context, routes map[string]static.Route) error {
	w.log.Info("writing routes", slog.Int("count", len(routes)))
	ids := make([]string, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		r := routes[id]
		doc := map[string]any{
			"route_id":          r.RouteID,
			"route_name":        r.ShortName,
			"route_description": r.Description,
			"route_color":       r.Color,
			"active":            true,
		}
		docID := r.RouteID
		if err := w.add(ctx, func(b Batch) { b.Set(CollectionRoutes, docID, doc) }); err != nil {
			return err
		}
	}
	return nil
}

// ResetAlerts marks every currently-active alert document inactive. Combined
// with AddAlerts this is an invalidate-then-insert policy, not a diff.
func (w *Writer) ResetAlerts(ctx context.Context) error {
	ids, err := w.store.ActiveAlertIDs(ctx)
	if err != nil {
		return fmt.Errorf("list active alerts: %w", err)
	}
	w.log.Info("resetting alerts", slog.Int("count", len(ids)))
	for _, id := range ids {
		docID := id
		err := w.add(ctx, func(b Batch) {
			b.Update(CollectionAlerts, docID, map[string]any{"active": false})
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// AddAlerts inserts the new alert records under store-generated keys.
func (w *Writer) AddAlerts(ctx context.Context, alerts []normalize.Alert) error {
	w.log.Info("writing alerts", slog.Int("count", len(alerts)))
	for _, a := range alerts {
		alert := a
		if err := w.add(ctx, func(b Batch) { b.Add(CollectionAlerts, alert) }); err != nil {
			return err
		}
	}
	return nil
}

// PutArrivals groups arrivals by stop then route, keeps the earliest
// arrivalsPerRoute per pair, and upserts them under the deterministic key
// {stop}_{route}_{index} so repeated runs overwrite prior entries.
func (w *Writer) PutArrivals(ctx context.Context, arrivals []normalize.Arrival) error {
	w.log.Info("writing arrivals", slog.Int("count", len(arrivals)))

	byStop := map[string]map[string][]normalize.Arrival{}
	for _, a := range arrivals {
		if byStop[a.StopID] == nil {
			byStop[a.StopID] = map[string][]normalize.Arrival{}
		}
		byStop[a.StopID][a.Route] = append(byStop[a.StopID][a.Route], a)
	}

	for _, stopID := range sortedNestedKeys(byStop) {
		byRoute := byStop[stopID]
		routeIDs := make([]string, 0, len(byRoute))
		for r := range byRoute {
			routeIDs = append(routeIDs, r)
		}
		sort.Strings(routeIDs)

		for _, routeID := range routeIDs {
			list := byRoute[routeID]
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].Timestamp < list[j].Timestamp
			})
			if len(list) > arrivalsPerRoute {
				list = list[:arrivalsPerRoute]
			}
			for i, a := range list {
				docID := fmt.Sprintf("%s_%s_%d", stopID, routeID, i)
				arrival := a
				if err := w.add(ctx, func(b Batch) { b.Set(CollectionArrivals, docID, arrival) }); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func sortedStationKeys(stations map[string]static.Station) []string {
	keys := make([]string, 0, len(stations))
	for k := range stations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNestedKeys(m map[string]map[string][]normalize.Arrival) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
