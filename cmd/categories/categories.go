// Package categories handles the categories command
package categories

import (
	"fmt"

	"fjacquet/gastos-bot/cmd/root"
	"fjacquet/gastos-bot/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the subcategories of the local catalog",
	Long: `List the subcategories of the local keyword catalog in tie-break order,
with the number of keywords each one carries. Catch-all subcategories never
take part in keyword scoring and are marked as such.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, entry := range root.GetContainer().GetCatalog() {
		note := fmt.Sprintf("%d palabras clave", len(entry.Keywords))
		if models.IsCatchAll(entry.Name) {
			note = "comodín"
		}
		fmt.Fprintf(out, "%2d. %-24s %s\n", i+1, entry.Name, note)
	}
	return nil
}
