package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search corpus items",
		Long:  "Search item text, keywords and explanations for matching text.",
		Run:   runSearch,
	}

	cmd.Flags().StringP("model", "m", "", "Filter by model")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	modelID, _ := cmd.Flags().GetString("model")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := ensureSeeded(cmd.Context(), s); err != nil {
		exitErr("seed catalog", err)
	}

	results, err := s.SearchItems(cmd.Context(), store.SearchParams{
		Model:    modelID,
		Category: category,
		Query:    query,
		Limit:    limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if results == nil {
		results = []store.SearchResult{}
	}
	printJSON(results)
}
