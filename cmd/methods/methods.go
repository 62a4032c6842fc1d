// Package methods handles the methods command
package methods

import (
	"fmt"

	"fjacquet/gastos-bot/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the methods command
var Cmd = &cobra.Command{
	Use:   "methods",
	Short: "List the active payment methods",
	Long: `List the active payment methods that the text after the first '.' of a
message is matched against. Methods come from the database when one is
configured, otherwise from the local payment methods file.`,
	Args: cobra.NoArgs,
	RunE: methodsFunc,
}

func methodsFunc(cmd *cobra.Command, args []string) error {
	methods, err := root.GetContainer().GetPaymentMethodSource().ActivePaymentMethods(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load payment methods: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, m := range methods {
		fmt.Fprintf(out, "%s %-20s %s\n", m.Icon, m.Name, m.Type)
	}
	return nil
}
