package store

import (
	"context"

	"github.com/abhisek/mededu/internal/model"
)

// MemoryStore holds the encoded document in memory. It shares the codec of
// the persistent backends, so documents never alias between loads.
type MemoryStore struct {
	raw   []byte
	saves int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*model.Document, error) {
	if s.raw == nil {
		return model.NewDocument(), nil
	}
	return Decode(s.raw)
}

func (s *MemoryStore) Save(ctx context.Context, doc *model.Document) error {
	raw, err := Encode(doc)
	if err != nil {
		return err
	}
	s.raw = raw
	s.saves++
	return nil
}

// Bytes returns the last saved encoding, or nil if nothing was saved.
func (s *MemoryStore) Bytes() []byte {
	return s.raw
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	return s.saves
}

func (s *MemoryStore) Close() error { return nil }
