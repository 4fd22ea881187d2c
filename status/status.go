// Package status exposes the normalized per-feed-group status view consumed
// by the web layer.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/subwaylive/mta-ingest/config"
	"github.com/subwaylive/mta-ingest/gtfsrt"
	"github.com/subwaylive/mta-ingest/normalize"
)

// ErrUnknownFeedGroup reports a feed identifier outside the supported set.
var ErrUnknownFeedGroup = errors.New("unknown feed group")

// DefaultFeedID is used when the caller does not name a feed group.
const DefaultFeedID = "1"

// Response is the status payload for one feed group.
type Response struct {
	FeedIDRequested       string                   `json:"feed_id_requested"`
	FeedTimestamp         uint64                   `json:"feed_timestamp"`
	CurrentProcessingTime int64                    `json:"current_processing_time"`
	TripUpdates           []normalize.TripUpdate   `json:"trip_updates"`
	Alerts                []normalize.AlertSummary `json:"alerts"`
}

// Service answers status queries by fetching and normalizing one feed group.
type Service struct {
	cfg    *config.Config
	client *gtfsrt.Client
	norm   *normalize.Normalizer
	log    *slog.Logger
	now    func() time.Time
}

// NewService wires a status service from its collaborators.
func NewService(cfg *config.Config, client *gtfsrt.Client, norm *normalize.Normalizer, log *slog.Logger) *Service {
	return &Service{cfg: cfg, client: client, norm: norm, log: log, now: time.Now}
}

// Status fetches, decodes and normalizes the feed for the requested group.
// An empty feedID selects the default group. Unmapped identifiers return
// ErrUnknownFeedGroup; fetch and decode failures return an error wrapping
// gtfsrt.ErrFeedUnavailable. Both are structured errors, never panics.
func (s *Service) Status(ctx context.Context, feedID string) (*Response, error) {
	if feedID == "" {
		feedID = DefaultFeedID
	}
	group, ok := config.ResolveGroup(feedID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeedGroup, feedID)
	}

	fm, err := s.client.FetchMessage(ctx, s.cfg.URL(group))
	if err != nil {
		s.log.Warn("feed fetch failed",
			slog.String("feed_group", string(group)),
			slog.String("error", err.Error()))
		return nil, err
	}

	return &Response{
		FeedIDRequested:       feedID,
		FeedTimestamp:         fm.GetHeader().GetTimestamp(),
		CurrentProcessingTime: s.now().Unix(),
		TripUpdates:           s.norm.TripUpdates(fm),
		Alerts:                s.norm.AlertSummaries(fm),
	}, nil
}
