package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Firestore implements Store over a Cloud Firestore database.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore connects to Firestore. An empty credentialsFile falls back to
// application default credentials.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (*Firestore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect firestore: %w", err)
	}
	return &Firestore{client: client}, nil
}

// Close releases the underlying client.
func (s *Firestore) Close() error {
	return s.client.Close()
}

func (s *Firestore) NewBatch() Batch {
	return &firestoreBatch{client: s.client, batch: s.client.Batch()}
}

func (s *Firestore) ActiveAlertIDs(ctx context.Context) ([]string, error) {
	iter := s.client.Collection(CollectionAlerts).Where("active", "==", true).Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}

type firestoreBatch struct {
	client *firestore.Client
	batch  *firestore.WriteBatch
}

func (b *firestoreBatch) Set(collection, docID string, data any) {
	b.batch.Set(b.client.Collection(collection).Doc(docID), data)
}

func (b *firestoreBatch) Add(collection string, data any) {
	b.batch.Set(b.client.Collection(collection).NewDoc(), data)
}

func (b *firestoreBatch) Update(collection, docID string, fields map[string]any) {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	b.batch.Update(b.client.Collection(collection).Doc(docID), updates)
}

func (b *firestoreBatch) Commit(ctx context.Context) error {
	_, err := b.batch.Commit(ctx)
	return err
}
