package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/year-card/internal/essay"
	"github.com/rcliao/year-card/internal/history"
	"github.com/rcliao/year-card/internal/model"
	"github.com/rcliao/year-card/internal/render"
	"github.com/rcliao/year-card/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the next essay for the current draft",
		Long:  "Apply any answer flags to the stored draft, generate an essay not seen before, and store the essay and next nonce back into the draft.",
		Run:   runGenerate,
	}

	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("path", "", "Narrative path: friend, love, secret")
	cmd.Flags().String("love", "", "Love answer: unset, just_friends, like_you, love_you, cant_say")
	cmd.Flags().String("wish", "", "Wish: unset, relation, breakup, peace, all")
	cmd.Flags().String("relationship", "", "Relationship: friend, crush, secret_lover (default: derived from --love)")
	cmd.Flags().Int("nonce", -1, "Start from this nonce instead of the stored one")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	path, _ := flags.GetString("path")
	love, _ := flags.GetString("love")
	wish, _ := flags.GetString("wish")
	rel, _ := flags.GetString("relationship")
	nonce, _ := flags.GetInt("nonce")

	if love != "" && !model.ValidLoveAnswers[model.LoveAnswer(love)] {
		exitErr("generate", fmt.Errorf("invalid --love %q", love))
	}
	if wish != "" && !model.ValidWishes[model.Wish(wish)] {
		exitErr("generate", fmt.Errorf("invalid --wish %q", wish))
	}
	if path != "" && !model.ValidPaths[model.Path(path)] {
		exitErr("generate", fmt.Errorf("invalid --path %q", path))
	}
	if rel != "" && !model.ValidRelationships[model.Relationship(rel)] {
		exitErr("generate", fmt.Errorf("invalid --relationship %q", rel))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	drafts := session.New(s, session.DefaultKey, logger)

	draft := drafts.Read(ctx)
	if flags.Changed("name") {
		draft.Name = name
	}
	if flags.Changed("path") {
		draft.SelectedPath = model.Path(path)
	}
	if love != "" {
		draft.LoveAnswer = model.LoveAnswer(love)
		draft.Relationship = model.RelationshipFor(draft.LoveAnswer)
	}
	if rel != "" {
		draft.Relationship = model.Relationship(rel)
	}
	if wish != "" {
		draft.Wish = model.Wish(wish)
	}
	if nonce >= 0 {
		draft.EssayNonce = nonce
	}

	hist := history.New(s, history.WithLogger(logger))
	res := essay.NewGenerator(hist, essay.WithLogger(logger)).Generate(draft)

	drafts.Write(ctx, func(d *model.Draft) {
		*d = draft
		d.Essay = res.Essay
		d.EssayNonce = res.NextNonce
	})

	switch formatFlag {
	case "json":
		b, _ := json.MarshalIndent(res, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	case "html":
		html, err := render.HTML(res.Essay)
		if err != nil {
			exitErr("render", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), html)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), res.Essay)
	}
}
