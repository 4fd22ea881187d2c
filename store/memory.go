package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/subwaylive/mta-ingest/normalize"
)

// Memory is an in-memory Store used by tests and dry runs. It records every
// committed batch so callers can assert on batching behavior.
type Memory struct {
	mu sync.Mutex

	// Docs holds the current state, keyed "collection/docID".
	Docs map[string]any
	// CommittedOps records the operation count of each committed batch.
	CommittedOps []int

	autoID int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{Docs: map[string]any{}}
}

func (s *Memory) NewBatch() Batch {
	return &memoryBatch{store: s}
}

func (s *Memory) ActiveAlertIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := CollectionAlerts + "/"
	var ids []string
	for key, data := range s.Docs {
		if len(key) <= len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		switch d := data.(type) {
		case map[string]any:
			if active, ok := d["active"].(bool); ok && active {
				ids = append(ids, key[len(prefix):])
			}
		case normalize.Alert:
			if d.Active {
				ids = append(ids, key[len(prefix):])
			}
		}
	}
	return ids, nil
}

// Doc returns the current data for a document, if present.
func (s *Memory) Doc(collection, docID string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.Docs[collection+"/"+docID]
	return data, ok
}

// CollectionKeys lists the document ids present in a collection.
func (s *Memory) CollectionKeys(collection string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := collection + "/"
	var ids []string
	for key := range s.Docs {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			ids = append(ids, key[len(prefix):])
		}
	}
	return ids
}

type memoryOp struct {
	key    string
	data   any
	fields map[string]any
}

type memoryBatch struct {
	store *Memory
	ops   []memoryOp
}

func (b *memoryBatch) Set(collection, docID string, data any) {
	b.ops = append(b.ops, memoryOp{key: collection + "/" + docID, data: data})
}

func (b *memoryBatch) Add(collection string, data any) {
	b.store.mu.Lock()
	b.store.autoID++
	id := fmt.Sprintf("auto-%d", b.store.autoID)
	b.store.mu.Unlock()
	b.ops = append(b.ops, memoryOp{key: collection + "/" + id, data: data})
}

func (b *memoryBatch) Update(collection, docID string, fields map[string]any) {
	b.ops = append(b.ops, memoryOp{key: collection + "/" + docID, fields: fields})
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	for _, op := range b.ops {
		if op.fields != nil {
			existing, ok := b.store.Docs[op.key].(map[string]any)
			if !ok {
				existing = map[string]any{}
			}
			for k, v := range op.fields {
				existing[k] = v
			}
			b.store.Docs[op.key] = existing
			continue
		}
		b.store.Docs[op.key] = op.data
	}
	b.store.CommittedOps = append(b.store.CommittedOps, len(b.ops))
	b.ops = nil
	return nil
}
