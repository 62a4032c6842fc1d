// Package parse handles the parse command
package parse

import (
	"fjacquet/gastos-bot/cmd/common"
	"fjacquet/gastos-bot/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse an expense message without classifying it",
	Long: `Parse an expense message into amount, description and payment method.

The text before the first '.' carries the amount and the description, the text
after it names the payment method.

Example:
  gastos-bot parse "50 almuerzo en restaurante. tarjeta"`,
	Args: cobra.MinimumNArgs(1),
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	expense := c.GetParser().Parse(cmd.Context(), common.MessageFromArgs(args))
	common.WriteExpense(cmd.OutOrStdout(), expense)
	return nil
}
