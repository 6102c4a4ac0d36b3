package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List a model's categories, session preferences first",
		Run:   runCategories,
	}

	cmd.Flags().StringP("model", "m", "", "Corpus model id (default from config)")
	cmd.Flags().StringP("session", "s", "", "Session whose preferences order the list")

	RootCmd.AddCommand(cmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	modelID := flagOr(cmd, "model", settings().Defaults.Model)
	sessionID, _ := cmd.Flags().GetString("session")

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

	var hist *model.GenerationHistory
	if sessionID != "" {
		sess, err := s.GetSession(ctx, sessionID)
		if err != nil {
			exitErr("session", err)
		}
		hist = &sess.History
	}

	cats := newGenerator(cat, newLogger(), hist).RecommendedCategories(modelID)
	if formatFlag == "text" {
		for _, c := range cats {
			fmt.Println(c)
		}
		return
	}
	printJSON(cats)
}
