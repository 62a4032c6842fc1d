// Package classify handles the classify command
package classify

import (
	"fmt"

	"fjacquet/gastos-bot/cmd/common"
	"fjacquet/gastos-bot/cmd/root"

	"github.com/spf13/cobra"
)

var explain bool

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Parse and classify an expense message",
	Long: `Parse an expense message and classify its description into a subcategory.

Classification tries the local keyword catalog first, then the remote
subcategory store when a database is configured, and finally falls back to
"Otros no clasificados".

Example:
  gastos-bot classify "50 almuerzo en restaurante"
  gastos-bot classify --explain "3500 uber al centro. tarjeta"`,
	Args: cobra.MinimumNArgs(1),
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show which classification tiers were attempted")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	outcome := root.GetContainer().GetProcessor().Process(cmd.Context(), common.MessageFromArgs(args))
	fmt.Fprintln(out, outcome.Confirmation())

	if explain {
		summary := outcome.Trace.Summary()
		if summary == "" {
			summary = "-"
		}
		fmt.Fprintf(out, "\nNivel: %s (puntaje %d)\n", outcome.Classification.Tier, outcome.Classification.Score)
		fmt.Fprintf(out, "Estrategias: %s\n", summary)
	}
	return nil
}
