package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/catalog"
	"github.com/rcliao/corpusgen/internal/engine"
	"github.com/rcliao/corpusgen/internal/model"
	"github.com/rcliao/corpusgen/internal/segment"
	"github.com/rcliao/corpusgen/internal/store"
)

func init() {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Corpus catalog management",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Copy the built-in catalog into the database",
		Run:   runCatalogInit,
	}

	importCmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import models from a YAML catalog",
		Long:  "Import models from a YAML catalog (file or stdin). Imported models replace stored models with the same id.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runCatalogImport,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active catalog as YAML",
		Run:   runCatalogExport,
	}
	exportCmd.Flags().StringP("model", "m", "", "Only export this model")

	splitCmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Turn prose into corpus items",
		Long:  "Split prose (file or stdin) into sentences and append them to a model, creating it if needed.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runCatalogSplit,
	}
	splitCmd.Flags().StringP("model", "m", "", "Target model id (required)")
	splitCmd.Flags().String("name", "", "Display name when the model is created")
	splitCmd.Flags().String("category", "", "Category for every new item")
	splitCmd.Flags().String("difficulty", "", "Difficulty for every new item: easy, medium, hard")
	splitCmd.Flags().StringSliceP("tags", "t", nil, "Tags for every new item")
	splitCmd.Flags().Bool("dry-run", false, "Print the items instead of storing them")
	splitCmd.MarkFlagRequired("model")

	catalogCmd.AddCommand(initCmd, importCmd, exportCmd, splitCmd)
	RootCmd.AddCommand(catalogCmd)
}

func runCatalogInit(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.ImportCatalog(cmd.Context(), catalog.Builtin().Models())
	if err != nil {
		exitErr("init catalog", err)
	}
	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", n)
}

func runCatalogImport(cmd *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		exitErr("read catalog", err)
	}
	models, err := catalog.Parse(data)
	if err != nil {
		exitErr("parse catalog", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.ImportCatalog(cmd.Context(), models)
	if err != nil {
		exitErr("import", err)
	}
	fmt.Printf(`{"ok":true,"models":%d,"imported":%d}`+"\n", len(models), n)
}

func runCatalogExport(cmd *cobra.Command, args []string) {
	modelID, _ := cmd.Flags().GetString("model")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cat, err := loadCatalog(cmd.Context(), s)
	if err != nil {
		exitErr("catalog", err)
	}

	models := cat.Models()
	if modelID != "" {
		m, ok := cat.Model(modelID)
		if !ok {
			exitErr("export", fmt.Errorf("%w: %s", store.ErrModelNotFound, modelID))
		}
		models = []model.CorpusModel{m}
	}

	b, err := catalog.Marshal(models)
	if err != nil {
		exitErr("export", err)
	}
	os.Stdout.Write(b)
}

func runCatalogSplit(cmd *cobra.Command, args []string) {
	modelID, _ := cmd.Flags().GetString("model")
	name, _ := cmd.Flags().GetString("name")
	category, _ := cmd.Flags().GetString("category")
	difficultyStr, _ := cmd.Flags().GetString("difficulty")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var difficulty model.Difficulty
	if difficultyStr != "" {
		difficulty = model.Difficulty(difficultyStr)
		if !model.ValidDifficulties[difficulty] {
			exitErr("split", fmt.Errorf("invalid difficulty %q (use easy, medium, hard)", difficultyStr))
		}
	}

	data, err := readInput(args)
	if err != nil {
		exitErr("read input", err)
	}

	var items []model.CorpusItem
	for _, seg := range segment.Split(string(data), segment.DefaultOptions()) {
		items = append(items, model.CorpusItem{
			Text:       seg.Text,
			Category:   category,
			Difficulty: difficulty,
			Keywords:   engine.ExtractKeywords(seg.Text),
			Tags:       tags,
		})
	}
	if len(items) == 0 {
		exitErr("split", fmt.Errorf("no text found"))
	}

	if dryRun {
		printJSON(items)
		return
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	if err := ensureSeeded(ctx, s); err != nil {
		exitErr("seed catalog", err)
	}

	n, err := s.AppendItems(ctx, modelID, items)
	if errors.Is(err, store.ErrModelNotFound) {
		if name == "" {
			name = modelID
		}
		n, err = s.ImportCatalog(ctx, []model.CorpusModel{{ID: modelID, Name: name, Items: items}})
	}
	if err != nil {
		exitErr("split", err)
	}
	fmt.Printf(`{"ok":true,"model":%q,"added":%d}`+"\n", modelID, n)
}

// readInput reads the named file, or stdin when no file is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
