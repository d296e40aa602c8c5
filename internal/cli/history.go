package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/history"
)

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Essay fingerprint history",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored fingerprints, most recent first",
		Run:   runHistoryList,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all stored fingerprints",
		Run:   runHistoryClear,
	}

	for _, c := range []*cobra.Command{listCmd, clearCmd} {
		c.Flags().String("key", history.DefaultKey, "History slot key")
	}

	historyCmd.AddCommand(listCmd, clearCmd)
	RootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	items := history.New(s, history.WithKey(key), history.WithLogger(logger)).List(cmd.Context())
	if items == nil {
		items = []string{}
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	for _, h := range items {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := history.New(s, history.WithKey(key)).Clear(cmd.Context()); err != nil {
		exitErr("clear history", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"key":%q}`+"\n", key)
}
