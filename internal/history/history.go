// Package history keeps a bounded, most-recent-first list of essay
// fingerprints in a single persisted string slot.
package history

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const (
	// DefaultKey is the slot key browser clients have always used.
	DefaultKey = "new-year:essay-hashes:v1"
	// Capacity is the maximum number of fingerprints kept.
	Capacity = 64
)

// Slot is a persisted key/value cell holding one string blob per key.
// Get reports false when the key has never been set.
type Slot interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store is a fingerprint history over a Slot. Reads fail open and writes
// never surface errors: a broken slot only makes repeats more likely.
type Store struct {
	slot   Slot
	key    string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the slot key, e.g. to scope history per session.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger used to report swallowed slot errors.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store backed by slot.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{slot: slot, key: DefaultKey, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Has reports whether fp is in the history.
func (s *Store) Has(fp string) bool {
	for _, h := range s.read(context.Background()) {
		if h == fp {
			return true
		}
	}
	return false
}

// Add moves fp to the front of the history, dropping the oldest entries
// beyond Capacity.
func (s *Store) Add(fp string) {
	ctx := context.Background()
	items := s.read(ctx)
	next := make([]string, 0, len(items)+1)
	next = append(next, fp)
	for _, h := range items {
		if h != fp {
			next = append(next, h)
		}
	}
	s.write(ctx, next)
}

// List returns the stored fingerprints, most recent first.
func (s *Store) List(ctx context.Context) []string {
	return s.read(ctx)
}

// Clear empties the history. Unlike Add it reports write failures.
func (s *Store) Clear(ctx context.Context) error {
	return s.slot.Set(ctx, s.key, "[]")
}

func (s *Store) read(ctx context.Context) []string {
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.logger.Debug("history read failed", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Debug("history blob unreadable", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	items := make([]string, 0, len(parsed))
	for _, v := range parsed {
		if str, ok := v.(string); ok {
			items = append(items, str)
		}
	}
	return items
}

func (s *Store) write(ctx context.Context, items []string) {
	if len(items) > Capacity {
		items = items[:Capacity]
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.slot.Set(ctx, s.key, string(b)); err != nil {
		s.logger.Debug("history write dropped", zap.String("key", s.key), zap.Error(err))
	}
}

// MemorySlot is an in-process Slot.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemorySlot returns an empty MemorySlot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
