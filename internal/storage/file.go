package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore keeps each collection in a single JSON file mapping
// document id to document, rewritten wholesale on every mutation.
// A per-collection mutex is held for the full read-modify-write span;
// without it concurrent writers would lose updates.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) load(collection string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	docs := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
	}
	return docs, nil
}

// flush rewrites the collection file through a temp file + rename so
// concurrent readers never observe a half-written file.
func (s *FileStore) flush(collection string, docs map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return os.Rename(tmp, s.path(collection))
}

func (s *FileStore) Get(ctx context.Context, collection, id string, dest interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}
	raw, ok := docs[id]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (s *FileStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}
	docs[id] = raw
	return s.flush(collection, docs)
}

func (s *FileStore) Delete(ctx context.Context, collection, id string) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}
	if _, ok := docs[id]; !ok {
		return nil
	}
	delete(docs, id)
	return s.flush(collection, docs)
}

func (s *FileStore) List(ctx context.Context, collection string, dest interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	docs, err := s.load(collection)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raws := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		raws = append(raws, docs[id])
	}
	arr, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("encode %s list: %w", collection, err)
	}
	return json.Unmarshal(arr, dest)
}

var _ Store = (*FileStore)(nil)
