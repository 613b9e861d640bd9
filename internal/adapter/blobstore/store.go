// Package blobstore implements pronunciation audio storage on a NATS
// JetStream object store bucket.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nats-io/nats.go"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// Store provides byte storage keyed by string on a single bucket.
// Keys are independent; there is no cross-key invariant.
type Store struct {
	bucket string
	store  nats.ObjectStore
}

// New binds to the named bucket, creating it when absent. The ensure step
// is idempotent: an existing bucket is reused as-is.
func New(js nats.JetStreamContext, bucket string) (*Store, error) {
	store, err := js.CreateObjectStore(&nats.ObjectStoreConfig{
		Bucket:  bucket,
		Storage: nats.FileStorage,
	})
	if err != nil {
		if !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		store, err = js.ObjectStore(bucket)
		if err != nil {
			return nil, fmt.Errorf("bind bucket %q: %w", bucket, err)
		}
	}

	return &Store{bucket: bucket, store: store}, nil
}

// Put stores data under key, overwriting any existing object.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	_, err := s.store.Put(&nats.ObjectMeta{Name: key}, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("put object %q in bucket %q: %w", key, s.bucket, err)
	}

	return nil
}

// Get returns the object stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	obj, err := s.store.Get(key)
	if err != nil {
		if errors.Is(err, nats.ErrObjectNotFound) {
			return nil, fmt.Errorf("object %q in bucket %q: %w", key, s.bucket, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get object %q from bucket %q: %w", key, s.bucket, err)
	}

	data, readErr := io.ReadAll(obj)
	closeErr := obj.Close()

	if readErr != nil {
		return nil, fmt.Errorf("read object %q: %w", key, readErr)
	}
	if closeErr != nil {
		return data, fmt.Errorf("close object %q: %w", key, closeErr)
	}

	return data, nil
}
