package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"domainmodel/internal/core"
	"domainmodel/internal/log"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string
	Debug     bool

	// Money
	IncomeCurrency string
	ReportCurrency string

	// Scenario, checked only by the commands that read it
	ScenarioFile string
}

func Load() *Config {
	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		Debug:     getEnvBool("DEBUG", false),

		IncomeCurrency: getEnv("INCOME_CURRENCY", string(core.USD)),
		ReportCurrency: getEnv("REPORT_CURRENCY", string(core.USD)),

		ScenarioFile: getEnv("SCENARIO_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if _, err := core.ParseCurrency(c.IncomeCurrency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid income currency '%s': must be one of %v", c.IncomeCurrency, core.Currencies()))
	}
	if _, err := core.ParseCurrency(c.ReportCurrency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid report currency '%s': must be one of %v", c.ReportCurrency, core.Currencies()))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Currencies returns the parsed income and report currencies. Call after Validate.
func (c *Config) Currencies() (income, report core.Currency) {
	income, _ = core.ParseCurrency(c.IncomeCurrency)
	report, _ = core.ParseCurrency(c.ReportCurrency)
	return income, report
}

// LoggerConfig maps the logging settings onto a log.Config.
func (c *Config) LoggerConfig() log.Config {
	lc := log.DefaultConfig()
	lc.Level, _ = log.ParseLevel(c.LogLevel)
	if c.Debug {
		lc.Level = slog.LevelDebug
	}
	lc.Format = c.LogFormat
	return lc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
