package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"domainmodel/internal/config"
	"domainmodel/internal/log"
)

// env is what every subcommand receives once the root has started up.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func Execute() {
	LoadEnvFile()
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var debug bool
	e := &env{out: out}

	cmd := &cobra.Command{
		Use:          "domainmodel",
		Short:        "Money, jobs, people and households",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = SetupLogger(cfg, debug)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(log.NewContext(ctx, e.logger))
			e.logger.Debug("Configuration loaded",
				log.FieldOperation, log.OpStartup,
				"income_currency", cfg.IncomeCurrency,
				"report_currency", cfg.ReportCurrency)
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(runCmd(e))
	cmd.AddCommand(validateCmd(e))
	cmd.AddCommand(convertCmd(e))
	return cmd
}
