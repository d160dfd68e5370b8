package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"domainmodel/internal/core"
	"domainmodel/internal/log"
	"domainmodel/internal/report"
	"domainmodel/internal/scenario"
)

var errNoScenario = errors.New("no scenario file: pass --file or set SCENARIO_FILE")

func runCmd(e *env) *cobra.Command {
	var file string
	var currency string

	c := &cobra.Command{
		Use:   "run",
		Short: "Play a household scenario and print people and household incomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			income, reportCur := e.cfg.Currencies()
			if currency != "" {
				rc, err := core.ParseCurrency(currency)
				if err != nil {
					return wrap("run", err)
				}
				reportCur = rc
			}

			s, err := loadScenario(e, file)
			if err != nil {
				return err
			}
			h, err := s.Build(ctx, income)
			if err != nil {
				return wrap("build scenario", err)
			}

			if err := report.WritePeople(e.out, h.Everyone()); err != nil {
				return err
			}
			for _, nf := range h.Families {
				fmt.Fprintln(e.out)
				if err := report.WriteHousehold(e.out, nf.Name, nf.Family.Summary(h.IncomeCurrency, reportCur)); err != nil {
					return err
				}
			}

			e.logger.WithComponent(log.ComponentReport).InfoContext(ctx, "Scenario played",
				log.FieldOperation, log.OpRender,
				"people", len(h.Order),
				"families", len(h.Families),
				"rejections", len(h.Events),
				log.FieldCurrency, string(reportCur))
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Scenario YAML file (defaults to SCENARIO_FILE)")
	c.Flags().StringVarP(&currency, "currency", "c", "", "Report currency (defaults to REPORT_CURRENCY)")
	return c
}

func validateCmd(e *env) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a household scenario without playing it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(e, file)
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Scenario YAML file (defaults to SCENARIO_FILE)")
	return c
}

func loadScenario(e *env, file string) (*scenario.Scenario, error) {
	if file == "" {
		file = e.cfg.ScenarioFile
	}
	if file == "" {
		return nil, errNoScenario
	}
	e.logger.Debug("Loading scenario", log.FieldOperation, log.OpLoad, log.FieldPath, file)
	return scenario.Load(file)
}
