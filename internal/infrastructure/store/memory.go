package store

import (
	"context"
	"sync"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
)

// MemoryStore keeps documents in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]preference.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]preference.Document)}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (preference.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	doc, ok := s.docs[token]
	s.mu.RUnlock()

	if !ok {
		return preference.DefaultDocument(), nil
	}
	return clone(doc), nil
}

func (s *MemoryStore) Put(ctx context.Context, token string, doc preference.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[token] = clone(doc)
	s.mu.Unlock()
	return nil
}

func clone(doc preference.Document) preference.Document {
	out := make(preference.Document, len(doc))
	copy(out, doc)
	return out
}
