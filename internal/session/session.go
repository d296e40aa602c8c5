// Package session persists a visitor's draft answers between steps.
package session

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/rcliao/year-card/internal/history"
	"github.com/rcliao/year-card/internal/model"
)

// DefaultKey is the slot key drafts are stored under.
const DefaultKey = "new-year:draft:v1"

// Slot is the persisted cell a draft lives in.
type Slot interface {
	history.Slot
	Delete(ctx context.Context, key string) error
}

// Drafts reads and writes one draft. Storage errors are logged and
// otherwise ignored; callers always get a usable draft back.
type Drafts struct {
	slot   Slot
	key    string
	logger *zap.Logger
}

// New returns Drafts stored under key in slot. An empty key means DefaultKey.
func New(slot Slot, key string, logger *zap.Logger) *Drafts {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drafts{slot: slot, key: key, logger: logger}
}

// Read returns the stored draft merged over the defaults, with unknown
// answers reset.
func (d *Drafts) Read(ctx context.Context) model.Draft {
	draft := model.DefaultDraft()
	raw, ok, err := d.slot.Get(ctx, d.key)
	if err != nil {
		d.logger.Warn("read draft", zap.String("key", d.key), zap.Error(err))
		return draft
	}
	if !ok || raw == "" {
		return draft
	}
	// Unmarshal over the defaults so missing fields keep them.
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		d.logger.Warn("draft blob unreadable, starting over", zap.String("key", d.key), zap.Error(err))
		return model.DefaultDraft()
	}
	draft.Normalize()
	return draft
}

// Write applies patch to the current draft, stores it and returns it.
func (d *Drafts) Write(ctx context.Context, patch func(*model.Draft)) model.Draft {
	draft := d.Read(ctx)
	patch(&draft)

	b, err := json.Marshal(draft)
	if err != nil {
		return draft
	}
	if err := d.slot.Set(ctx, d.key, string(b)); err != nil {
		d.logger.Warn("write draft", zap.String("key", d.key), zap.Error(err))
	}
	return draft
}

// Clear removes the stored draft.
func (d *Drafts) Clear(ctx context.Context) {
	if err := d.slot.Delete(ctx, d.key); err != nil {
		d.logger.Warn("clear draft", zap.String("key", d.key), zap.Error(err))
	}
}
