package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/year-card/internal/model"
)

// Validation errors returned by PutResponse.
var (
	ErrInvalidLoveAnswer = errors.New("invalid loveAnswer")
	ErrInvalidWish       = errors.New("invalid wish")
)

const (
	// anonymousName is stored for responses submitted without a name.
	anonymousName = "Anonymous"
	// timeLayout sorts lexically in time order.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS responses (
		id           TEXT PRIMARY KEY,
		created_at   TEXT NOT NULL,
		name         TEXT NOT NULL,
		love_answer  TEXT NOT NULL,
		wish         TEXT NOT NULL,
		relationship TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_created ON responses(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists kv keys with the given prefix.
func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`, len(prefix), prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) PutResponse(ctx context.Context, p PutResponseParams) (*model.Response, error) {
	love := model.LoveAnswer(strings.TrimSpace(string(p.LoveAnswer)))
	wish := model.Wish(strings.TrimSpace(string(p.Wish)))
	if !model.ValidLoveAnswers[love] {
		return nil, ErrInvalidLoveAnswer
	}
	if !model.ValidWishes[wish] {
		return nil, ErrInvalidWish
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = anonymousName
	}

	now := time.Now().UTC()
	r := &model.Response{
		ID:           s.newID(now),
		CreatedAt:    now,
		Name:         name,
		LoveAnswer:   love,
		Wish:         wish,
		Relationship: model.RelationshipFor(love),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO responses (id, created_at, name, love_answer, wish, relationship)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, now.Format(timeLayout), r.Name, r.LoveAnswer, r.Wish, r.Relationship)
	if err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}
	return r, nil
}

func (s *SQLiteStore) ListResponses(ctx context.Context, p ListResponsesParams) ([]model.Response, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultResponseLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, name, love_answer, wish, relationship
		 FROM responses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []model.Response{}
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanResponse(row scanner) (model.Response, error) {
	var r model.Response
	var createdAt string

	err := row.Scan(&r.ID, &createdAt, &r.Name, &r.LoveAnswer, &r.Wish, &r.Relationship)
	if err != nil {
		return r, err
	}
	r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return r, nil
}
