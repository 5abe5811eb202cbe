package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// PebbleStore is an embedded key-value backend. Keys are
// "<collection>/<id>", values are JSON documents. Pebble serializes
// writes per key, which covers the single-document atomicity the
// Store contract asks for.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", dir, err)
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}

func key(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func (s *PebbleStore) Get(ctx context.Context, collection, id string, dest interface{}) error {
	value, closer, err := s.db.Get(key(collection, id))
	if errors.Is(err, pebble.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	defer closer.Close()
	return json.Unmarshal(value, dest)
}

func (s *PebbleStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.db.Set(key(collection, id), data, pebble.Sync); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PebbleStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.db.Delete(key(collection, id), pebble.Sync); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PebbleStore) List(ctx context.Context, collection string, dest interface{}) error {
	prefix := []byte(collection + "/")
	upper := []byte(collection + "0") // '0' is the byte after '/'

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upper,
	})
	if err != nil {
		return fmt.Errorf("iterate %s: %w", collection, err)
	}
	defer iter.Close()

	raws := []json.RawMessage{}
	for iter.First(); iter.Valid(); iter.Next() {
		value := append([]byte(nil), iter.Value()...)
		raws = append(raws, json.RawMessage(value))
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("iterate %s: %w", collection, err)
	}

	arr, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("encode %s list: %w", collection, err)
	}
	return json.Unmarshal(arr, dest)
}

var _ Store = (*PebbleStore)(nil)
