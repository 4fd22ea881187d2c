// Command mta-ingest performs one deterministic pass over the MTA realtime
// feeds: fetch, decode, normalize, match stations with routes, and persist
// everything to the document store in batched writes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/subwaylive/mta-ingest/config"
	"github.com/subwaylive/mta-ingest/gtfsrt"
	"github.com/subwaylive/mta-ingest/internal/logging"
	"github.com/subwaylive/mta-ingest/match"
	"github.com/subwaylive/mta-ingest/normalize"
	"github.com/subwaylive/mta-ingest/static"
	"github.com/subwaylive/mta-ingest/store"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config.yml")
	dryRun := flag.Bool("dry-run", false, "use the in-memory store instead of Firestore")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logging.New(os.Stdout, slog.LevelInfo)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	data := static.Load(cfg.Static.StopsPath, cfg.Static.RoutesPath, log)
	client := gtfsrt.NewClient(cfg.APIKey, cfg.Timeout())
	norm := normalize.New(data)

	alerts := fetchAlerts(ctx, cfg, client, norm, log)
	if len(alerts) == 0 {
		log.Warn("no alerts in any feed group, substituting sample alert")
		alerts = normalize.SampleAlerts()
	}

	var arrivals []normalize.Arrival
	if fm, err := client.FetchMessage(ctx, cfg.URL(config.Group123)); err != nil {
		log.Warn("trip update feed failed, skipping arrivals", slog.String("error", err.Error()))
	} else {
		arrivals = norm.Arrivals(fm, "")
	}
	log.Info("normalized records",
		slog.Int("alerts", len(alerts)),
		slog.Int("arrivals", len(arrivals)))

	routesByStop := match.StationRoutes(data.Stations, arrivals)

	var st store.Store
	if *dryRun {
		st = store.NewMemory()
	} else {
		fs, err := store.NewFirestore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			log.Error("store connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = fs.Close() }()
		st = fs
	}

	if err := run(ctx, store.NewWriter(st, log), data, routesByStop, alerts, arrivals); err != nil {
		log.Error("pipeline write failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("ingest complete")
}

// run performs the write phase. Commit errors propagate; partial writes are
// visible and the caller decides whether to re-run.
func run(ctx context.Context, w *store.Writer, data *static.Data, routesByStop map[string][]string, alerts []normalize.Alert, arrivals []normalize.Arrival) error {
	if err := w.PutStations(ctx, data.Stations, routesByStop); err != nil {
		return err
	}
	if err := w.PutRoutes(ctx, data.Routes); err != nil {
		return err
	}
	if err := w.ResetAlerts(ctx); err != nil {
		return err
	}
	if err := w.AddAlerts(ctx, alerts); err != nil {
		return err
	}
	if err := w.Flush(ctx); err != nil {
		return err
	}

	// Arrivals get their own batch sequence.
	if err := w.PutArrivals(ctx, arrivals); err != nil {
		return err
	}
	return w.Flush(ctx)
}

// fetchAlerts collects scoped alert records from every feed group. Groups are
// fetched concurrently; a failing group contributes nothing and the others
// proceed independently.
func fetchAlerts(ctx context.Context, cfg *config.Config, client *gtfsrt.Client, norm *normalize.Normalizer, log *slog.Logger) []normalize.Alert {
	var (
		mu     sync.Mutex
		alerts []normalize.Alert
		wg     sync.WaitGroup
	)
	for _, group := range config.Groups() {
		wg.Add(1)
		go func(group config.FeedGroup) {
			defer wg.Done()
			fm, err := client.FetchMessage(ctx, cfg.URL(group))
			if err != nil {
				log.Warn("feed group failed",
					slog.String("feed_group", string(group)),
					slog.String("error", err.Error()))
				return
			}
			records := norm.Alerts(fm)
			mu.Lock()
			alerts = append(alerts, records...)
			mu.Unlock()
		}(group)
	}
	wg.Wait()
	return alerts
}
