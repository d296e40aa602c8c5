package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/session"
)

func init() {
	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Stored draft management",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored draft",
		Run:   runDraftShow,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset the stored draft",
		Run:   runDraftClear,
	}

	draftCmd.AddCommand(showCmd, clearCmd)
	RootCmd.AddCommand(draftCmd)
}

func runDraftShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	draft := session.New(s, session.DefaultKey, logger).Read(cmd.Context())
	b, _ := json.MarshalIndent(draft, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func runDraftClear(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	session.New(s, session.DefaultKey, logger).Clear(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
