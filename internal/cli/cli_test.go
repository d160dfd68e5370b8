package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"domainmodel/internal/config"
	"domainmodel/internal/core"
	"domainmodel/internal/scenario"
)

const householdYAML = `
people:
  - id: ted
    first_name: Ted
    last_name: Neward
    age: 45
    job: {title: Guest Lecturer, salary: 1000}
  - id: charlotte
    first_name: Charlotte
    last_name: Neward
    age: 45
  - id: mike
    first_name: Mike
    last_name: Neward
    age: 16
families:
  - name: neward
    spouses: [ted, charlotte]
    children: [mike]
`

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "DEBUG", "INCOME_CURRENCY", "REPORT_CURRENCY", "SCENARIO_FILE"} {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "household.yaml")
	if err := os.WriteFile(p, []byte(householdYAML), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return p
}

func TestConvertCommand(t *testing.T) {
	cleanEnv(t)
	out, err := execute(t, "convert", "100", "usd", "GBP")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "100 USD = 50 GBP\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertCommandErrors(t *testing.T) {
	cleanEnv(t)
	if _, err := execute(t, "convert", "100", "USD", "JPY"); !errors.Is(err, core.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
	if _, err := execute(t, "convert", "ten", "USD", "GBP"); err == nil {
		t.Fatalf("expected error for non-integer amount")
	}
	if _, err := execute(t, "convert", "10", "USD"); err == nil {
		t.Fatalf("expected error for missing argument")
	}
}

func TestRunCommand(t *testing.T) {
	cleanEnv(t)
	path := writeScenario(t)

	out, err := execute(t, "run", "--file", path, "--currency", "eur")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"[Person: firstName:Ted lastName:Neward age:45 job:Guest Lecturer spouse:Charlotte]",
		"[Person: firstName:Mike lastName:Neward age:16 job:none spouse:none]",
		"Household neward",
		"1500 EUR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunCommandUsesEnv(t *testing.T) {
	cleanEnv(t)
	t.Setenv("SCENARIO_FILE", writeScenario(t))
	t.Setenv("REPORT_CURRENCY", "gbp")

	out, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "500 GBP") {
		t.Fatalf("expected GBP totals, got:\n%s", out)
	}
}

func TestRunCommandErrors(t *testing.T) {
	cleanEnv(t)
	if _, err := execute(t, "run"); !errors.Is(err, errNoScenario) {
		t.Fatalf("expected errNoScenario, got %v", err)
	}
	if _, err := execute(t, "run", "--file", writeScenario(t), "--currency", "JPY"); !errors.Is(err, core.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	cleanEnv(t)
	out, err := execute(t, "validate", "-f", writeScenario(t))
	if err != nil || out != "OK\n" {
		t.Fatalf("expected OK, got %q (err=%v)", out, err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("people:\n  - {id: a, age: 30, spouse: z}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "validate", "-f", bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestInvalidConfigFailsStartup(t *testing.T) {
	cleanEnv(t)
	t.Setenv("REPORT_CURRENCY", "JPY")
	_, err := execute(t, "convert", "1", "USD", "USD")
	if err == nil || !strings.Contains(err.Error(), "invalid report currency") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestStaleScenarioFileOnlyAffectsScenarioCommands(t *testing.T) {
	cleanEnv(t)
	t.Setenv("SCENARIO_FILE", filepath.Join(t.TempDir(), "gone.yaml"))

	out, err := execute(t, "convert", "10", "USD", "GBP")
	if err != nil || out != "10 USD = 5 GBP\n" {
		t.Fatalf("convert must not read the scenario file, got %q (err=%v)", out, err)
	}

	for _, name := range []string{"run", "validate"} {
		if _, err := execute(t, name); !scenario.IsKind(err, scenario.KindNotFound) {
			t.Fatalf("%s: expected not_found, got %v", name, err)
		}
	}
}

func TestSetupLoggerDebugLeavesConfigAlone(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{LogLevel: "error", LogFormat: "text", IncomeCurrency: "USD", ReportCurrency: "USD"}
	logger := SetupLogger(cfg, true)
	if cfg.Debug {
		t.Fatalf("--debug must not be written back into the config")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected debug logging enabled")
	}
	if cfg.LoggerConfig().Level != slog.LevelError {
		t.Fatalf("config level must stay error, got %v", cfg.LoggerConfig().Level)
	}

	logger = SetupLogger(cfg, false)
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info suppressed at error level")
	}
}
