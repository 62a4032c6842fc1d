// Package batch handles batch processing of expense messages
package batch

import (
	"fmt"
	"runtime"

	"fjacquet/gastos-bot/cmd/common"
	"fjacquet/gastos-bot/cmd/root"
	pipeline "fjacquet/gastos-bot/internal/batch"
	csvutil "fjacquet/gastos-bot/internal/common"
	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/validation"

	"github.com/spf13/cobra"
)

var workers int

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process expense messages from a CSV file",
	Long: `Batch process expense messages from a CSV file.
The input file needs a "message" column; other columns are ignored. Every
message is parsed and classified, and one row per message is written to the
output CSV file. Messages without an amount are kept with an empty amount.

Example:
  gastos-bot batch -i mensajes.csv -o gastos.csv`,
	Args: cobra.NoArgs,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of concurrent workers for large files")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (--input)")
	}
	if root.SharedFlags.Output == "" {
		return fmt.Errorf("output file is required (--output)")
	}
	if err := validation.ValidateInputFile(root.SharedFlags.Input); err != nil {
		return err
	}
	if err := validation.ValidateOutputFile(root.SharedFlags.Output, root.SharedFlags.Input); err != nil {
		return err
	}

	c := root.GetContainer()
	logger := c.GetLogger()
	delimiter := c.GetConfig().CSVDelimiter()

	rows, err := csvutil.ReadCSVFile[models.MessageRow](root.SharedFlags.Input, delimiter, logger)
	if err != nil {
		return err
	}

	messages := make([]string, len(rows))
	for i, row := range rows {
		messages[i] = row.Message
	}

	outcomes, err := c.GetProcessor().ProcessAll(cmd.Context(), messages, workers)
	if err != nil {
		return fmt.Errorf("batch processing interrupted: %w", err)
	}

	records := make([]models.ExpenseRecord, len(outcomes))
	for i, o := range outcomes {
		records[i] = o.Record()
	}
	if err := csvutil.WriteRecordsToCSV(records, root.SharedFlags.Output, delimiter, logger); err != nil {
		return err
	}

	summary := pipeline.Summarize(outcomes, logger)
	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output},
		logging.Field{Key: logging.FieldCount, Value: summary.Total})
	common.WriteSummary(cmd.OutOrStdout(), summary)
	return nil
}
