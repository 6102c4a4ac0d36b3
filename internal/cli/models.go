package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List corpus models",
		Run:   runModels,
	}

	RootCmd.AddCommand(cmd)
}

type modelRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Items       int    `json:"items"`
}

func runModels(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cat, err := loadCatalog(cmd.Context(), s)
	if err != nil {
		exitErr("catalog", err)
	}

	rows := []modelRow{}
	for _, m := range cat.Models() {
		rows = append(rows, modelRow{ID: m.ID, Name: m.Name, Description: m.Description, Icon: m.Icon, Items: len(m.Items)})
	}

	if formatFlag == "text" {
		for _, r := range rows {
			fmt.Printf("%s %-10s %s (%d)\n", r.Icon, r.ID, r.Name, r.Items)
		}
		return
	}
	printJSON(rows)
}
