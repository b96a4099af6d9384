package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/medalboard/internal/smoke"
	"github.com/okian/medalboard/pkg/logger"
)

func main() {
	var (
		cfg       smoke.Config
		logFormat string
		help      bool
	)
	flag.StringVar(&cfg.BaseURL, "url", smoke.DefaultBaseURL, "Base URL of the service")
	flag.IntVar(&cfg.Selections, "selections", smoke.DefaultSelections, "Number of random selections to issue")
	flag.IntVar(&cfg.Top, "top", 0, "Expected tally size, 0 reads it from /stats")
	flag.IntVar(&cfg.Workers, "workers", smoke.DefaultWorkers, "Number of concurrent requests")
	flag.DurationVar(&cfg.Timeout, "timeout", smoke.DefaultTimeout, "HTTP request timeout")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Generator seed, 0 picks one from the clock")
	flag.StringVar(&logFormat, "log-format", "text", "Log output format, text or json")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Log every verified selection")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(logFormat); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := smoke.Run(ctx, &cfg); err != nil {
		logger.Get().Error(ctx, "smoke run failed", logger.Error(err))
		os.Exit(1)
	}
	logger.Get().Info(ctx, "smoke run passed")
}
