package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/model"
	"github.com/rcliao/year-card/internal/store"
)

func init() {
	responsesCmd := &cobra.Command{
		Use:   "responses",
		Short: "Logged questionnaire responses",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List responses, newest first",
		Run:   runResponsesList,
	}
	listCmd.Flags().IntP("limit", "l", store.DefaultResponseLimit, "Max results")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Log a response directly into the database",
		Run:   runResponsesAdd,
	}
	addCmd.Flags().String("name", "", "Display name (default: Anonymous)")
	addCmd.Flags().String("love", string(model.LoveUnset), "Love answer")
	addCmd.Flags().String("wish", string(model.WishUnset), "Wish")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all responses as JSON",
		Run:   runResponsesExport,
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import responses from JSON on stdin",
		Long:  "Import responses from JSON (stdin). Expects the format produced by export. Records get new ids and timestamps.",
		Run:   runResponsesImport,
	}

	responsesCmd.AddCommand(listCmd, addCmd, exportCmd, importCmd)
	RootCmd.AddCommand(responsesCmd)
}

func runResponsesList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	responses, err := s.ListResponses(cmd.Context(), store.ListResponsesParams{Limit: limit})
	if err != nil {
		exitErr("list responses", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(responses, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	for _, r := range responses {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Name, r.LoveAnswer, r.Wish, r.Relationship)
	}
}

func runResponsesAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	love, _ := cmd.Flags().GetString("love")
	wish, _ := cmd.Flags().GetString("wish")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	r, err := s.PutResponse(cmd.Context(), store.PutResponseParams{
		Name:       name,
		LoveAnswer: model.LoveAnswer(love),
		Wish:       model.Wish(wish),
	})
	if err != nil {
		exitErr("add response", err)
	}

	b, _ := json.Marshal(r)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func runResponsesExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	responses, err := s.ListResponses(cmd.Context(), store.ListResponsesParams{
		Limit: 1 << 30, // effectively unlimited
	})
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(responses, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func runResponsesImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var responses []model.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported := 0
	for _, r := range responses {
		_, err := s.PutResponse(cmd.Context(), store.PutResponseParams{
			Name:       r.Name,
			LoveAnswer: r.LoveAnswer,
			Wish:       r.Wish,
		})
		if err != nil {
			exitErr("import", err)
		}
		imported++
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
