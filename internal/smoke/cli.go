package smoke

import (
	"fmt"
	"os"

	"github.com/okian/medalboard/pkg/logger"
)

// SetupLogging initialises the global logger for the smoke tool.
func SetupLogging(format string) error {
	f, err := logger.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.WithFormat(f), logger.WithWriter(os.Stdout)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Medalboard Smoke Tool
=====================

Issues random selections against a running medalboard service and checks
every response for the dashboard invariants.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -selections int
        Number of random selections to issue (default 200)
  -top int
        Expected tally size, 0 reads it from /stats (default 0)
  -workers int
        Number of concurrent requests (default 8)
  -timeout duration
        HTTP request timeout (default 10s)
  -seed uint
        Generator seed, 0 picks one from the clock (default 0)
  -log-format string
        Log output format, text or json (default "text")
  -verbose
        Log every verified selection
  -help
        Show this help message

Examples:
  # Smoke test a local server
  go run ./cmd/smoke

  # Reproducible run with more load
  go run ./cmd/smoke -selections 2000 -workers 32 -seed 42
`)
}
