// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/gastos-bot/internal/config"
	"fjacquet/gastos-bot/internal/container"
	"fjacquet/gastos-bot/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "gastos-bot",
		Short: "A CLI tool to parse and classify Spanish expense messages.",
		Long: `gastos-bot reads short expense messages such as "50 almuerzo en restaurante. tarjeta"
and extracts the amount, the description and the payment method, then classifies
the description into a fixed taxonomy of expense subcategories.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.gastos, .gastos or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Override log.level")
}

// Register adds commands to the root command, skipping those already added.
func Register(cmds ...*cobra.Command) {
	for _, c := range cmds {
		if c.Parent() == Cmd {
			continue
		}
		Cmd.AddCommand(c)
	}
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.InitializeConfigFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	appContainer = c
	Log = c.GetLogger()
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if appContainer == nil {
		return nil
	}
	defer func() {
		if err := appContainer.Close(); err != nil {
			Log.WithError(err).Warn("Failed to close container")
		}
		appContainer = nil
	}()

	cfg := appContainer.GetConfig()
	if cfg.Metrics.Enabled && cfg.Metrics.Textfile != "" {
		if err := appContainer.GetMetrics().WriteTextfile(cfg.Metrics.Textfile); err != nil {
			Log.WithError(err).Warn("Failed to write metrics")
		} else {
			Log.Debug("Wrote metrics", logging.Field{Key: logging.FieldFile, Value: cfg.Metrics.Textfile})
		}
	}
	return nil
}
