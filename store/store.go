package store

import "context"

// Collection names in the external store.
const (
	CollectionStations = "stations"
	CollectionRoutes   = "routes"
	CollectionAlerts   = "alerts"
	CollectionArrivals = "next_arrivals"
)

// Batch accumulates write operations to be committed together. A Batch must
// not be shared across goroutines.
type Batch interface {
	// Set upserts a document under an explicit key.
	Set(collection, docID string, data any)
	// Add inserts a document under a store-generated key.
	Add(collection string, data any)
	// Update applies field updates to an existing document.
	Update(collection, docID string, fields map[string]any)
	// Commit submits the batch atomically.
	Commit(ctx context.Context) error
}

// Store is the minimal surface the batch writer needs from a document store.
type Store interface {
	NewBatch() Batch
	// ActiveAlertIDs lists the document ids of currently-active alerts.
	ActiveAlertIDs(ctx context.Context) ([]string, error)
}
