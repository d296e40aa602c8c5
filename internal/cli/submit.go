package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/client"
	"github.com/rcliao/year-card/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send the stored draft's answers to the response API",
		Run:   runSubmit,
	}

	cmd.Flags().String("api", "", "API base URL (default: client.base_url from config)")

	RootCmd.AddCommand(cmd)
}

func runSubmit(cmd *cobra.Command, args []string) {
	api, _ := cmd.Flags().GetString("api")
	if api == "" {
		api = cfg.Client.BaseURL
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	draft := session.New(s, session.DefaultKey, logger).Read(cmd.Context())
	s.Close()

	c := client.New(api, cfg.GetClientTimeout())
	res, err := c.SaveResponse(cmd.Context(), client.SaveResponsePayload{
		Name:       draft.Name,
		LoveAnswer: draft.LoveAnswer,
		Wish:       draft.Wish,
	})
	if err != nil {
		exitErr("submit", err)
	}

	b, _ := json.Marshal(res)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
