// Package store provides the card's storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/year-card/internal/model"
)

// PutResponseParams holds parameters for logging a questionnaire response.
type PutResponseParams struct {
	Name       string
	LoveAnswer model.LoveAnswer
	Wish       model.Wish
}

// ListResponsesParams holds parameters for listing responses.
type ListResponsesParams struct {
	Limit int // 0 means DefaultResponseLimit
}

// DefaultResponseLimit caps ListResponses when no limit is given.
const DefaultResponseLimit = 500

// Store defines the card storage interface.
type Store interface {
	// Get returns the value stored under key. ok is false if the key is unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PutResponse validates and logs a response. Returns the stored record.
	PutResponse(ctx context.Context, p PutResponseParams) (*model.Response, error)

	// ListResponses returns logged responses, newest first.
	ListResponses(ctx context.Context, p ListResponsesParams) ([]model.Response, error)

	// Close closes the store.
	Close() error
}
