package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string              `json:"db_path"`
	DBSizeBytes    int64               `json:"db_size_bytes"`
	TotalResponses int                 `json:"total_responses"`
	StoredKeys     int                 `json:"stored_keys"`
	HistoryKeys    int                 `json:"history_keys"`
	HistoryEntries int                 `json:"history_entries"`
	Relationships  []RelationshipStats `json:"relationships"`
}

// RelationshipStats holds per-category response counts.
type RelationshipStats struct {
	Relationship string `json:"relationship"`
	Count        int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&st.TotalResponses)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv`).Scan(&st.StoredKeys)

	rows, err := s.db.QueryContext(ctx, `
		SELECT relationship, COUNT(*) AS cnt
		FROM responses
		GROUP BY relationship ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var rs RelationshipStats
		rows.Scan(&rs.Relationship, &rs.Count)
		st.Relationships = append(st.Relationships, rs)
	}

	return st, nil
}
