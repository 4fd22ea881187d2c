// Package store persists normalized records to the external document store.
//
// The Writer groups writes into batches and commits whenever the running
// operation count reaches MaxBatchOps, which sits below the store's hard
// 500-operation ceiling. The Store and Batch interfaces keep the
// writer datastore-agnostic; a Firestore implementation and an in-memory fake
// are provided.
package store
