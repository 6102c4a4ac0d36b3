package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/config"
	"github.com/rcliao/corpusgen/internal/model"
	"github.com/rcliao/corpusgen/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Pick the next snippet",
		Long:  "Pick the next snippet for the text typed so far. Use -s to continue a stored session.",
		Run:   runGenerate,
	}

	cmd.Flags().StringP("model", "m", "", "Corpus model id (default from config)")
	cmd.Flags().String("mode", "", "Mode: single, paragraph, dialogue")
	cmd.Flags().String("difficulty", "", "Difficulty: easy, medium, hard, auto")
	cmd.Flags().String("length", "", "Length: short, medium, long")
	cmd.Flags().Bool("avoid-recent", true, "Skip snippets already shown in this session")
	cmd.Flags().StringP("session", "s", "", "Session id to continue")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	defaults := settings().Defaults
	modelID := flagOr(cmd, "model", defaults.Model)
	sessionID, _ := cmd.Flags().GetString("session")

	genCfg, err := generationConfig(cmd, defaults)
	if err != nil {
		exitErr("generate", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	cat, err := loadCatalog(ctx, s)
	if err != nil {
		exitErr("catalog", err)
	}

	var sess *store.Session
	if sessionID != "" {
		sess, err = s.GetSession(ctx, sessionID)
		if err != nil {
			exitErr("session", err)
		}
	}

	log := newLogger()
	defer log.Sync()

	var hist *model.GenerationHistory
	if sess != nil {
		hist = &sess.History
	}
	gen := newGenerator(cat, log, hist)

	item := gen.Generate(modelID, strings.Join(args, " "), genCfg)

	if sess != nil {
		if err := s.SaveSession(ctx, sess.ID, gen.Snapshot()); err != nil {
			exitErr("save session", err)
		}
	}
	log.Debug("generated", "model", modelID, "mode", genCfg.Mode, "session", sessionID, "found", item != nil)

	printItem(item)
}

func generationConfig(cmd *cobra.Command, d config.DefaultsConfig) (model.GenerationConfig, error) {
	mode, err := model.ParseMode(flagOr(cmd, "mode", d.Mode))
	if err != nil {
		return model.GenerationConfig{}, err
	}
	difficulty, err := model.ParseDifficulty(flagOr(cmd, "difficulty", d.Difficulty))
	if err != nil {
		return model.GenerationConfig{}, err
	}
	length, err := model.ParseLength(flagOr(cmd, "length", d.Length))
	if err != nil {
		return model.GenerationConfig{}, err
	}
	avoid := d.AvoidRecent
	if cmd.Flags().Changed("avoid-recent") {
		avoid, _ = cmd.Flags().GetBool("avoid-recent")
	}
	return model.GenerationConfig{Mode: mode, Difficulty: difficulty, Length: length, AvoidRecent: avoid}, nil
}

// flagOr returns the string flag value, or def when it was left empty.
func flagOr(cmd *cobra.Command, name, def string) string {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return def
	}
	return v
}

func printItem(item *model.CorpusItem) {
	if formatFlag != "text" {
		printJSON(item)
		return
	}
	if item == nil {
		fmt.Println("(nothing to generate)")
		return
	}
	fmt.Println(item.Text)
	if item.Explanation != "" {
		fmt.Printf("  💡 %s\n", item.Explanation)
	}
	if len(item.Keywords) > 0 {
		fmt.Printf("  关键词: %s\n", strings.Join(item.Keywords, "、"))
	}
}
