package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/history"
	"github.com/rcliao/year-card/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}
	if err := countHistory(cmd.Context(), s, stats); err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

// countHistory sums fingerprints over the CLI history and every
// session-scoped history stored under it.
func countHistory(ctx context.Context, s *store.SQLiteStore, st *store.Stats) error {
	keys, err := s.Keys(ctx, history.DefaultKey)
	if err != nil {
		return fmt.Errorf("list history keys: %w", err)
	}
	for _, k := range keys {
		st.HistoryKeys++
		st.HistoryEntries += len(history.New(s, history.WithKey(k)).List(ctx))
	}
	return nil
}
