package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"txengine/internal/config"
	"txengine/internal/engine"
	"txengine/internal/gateway"
	"txengine/internal/usecase"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Define command-line flags
	fs := flag.NewFlagSet("txengine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a config file (optional)")
	format := fs.String("format", "", "Output format: csv, json or table (default csv)")
	frozenPolicy := fs.String("frozen-policy", "", "Frozen accounts: allow or reject further deposits and withdrawals (default allow)")
	logLevel := fs.String("log-level", "", "Diagnostic log level: debug, info, warn or error (default info)")
	reportPath := fs.String("report", "", "Write a JSON replay report (summary and accounts) to this file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: txengine [flags] <transactions.csv>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	// Validate required arguments
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one transactions CSV file is required.")
		fs.Usage()
		return 1
	}
	inputPath := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	// Flags win over config file and environment
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *frozenPolicy != "" {
		cfg.Engine.FrozenPolicy = *frozenPolicy
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the gateways (the outermost layer)
	reader := gateway.NewCSVTransactionReader()
	writer, err := gateway.NewAccountWriter(cfg.Output.Format)
	if err != nil {
		logger.Error("invalid output format", zap.Error(err))
		return 1
	}

	// 2. Create the usecase and inject the gateways (the core logic layer)
	policy, err := engine.ParseFrozenPolicy(cfg.Engine.FrozenPolicy)
	if err != nil {
		logger.Error("invalid frozen account policy", zap.Error(err))
		return 1
	}
	replay := usecase.NewReplayUseCase(reader, writer, logger, engine.WithFrozenPolicy(policy))

	// --- Execute the Usecase ---
	report, err := replay.Run(context.Background(), inputPath, stdout)
	if err != nil {
		logger.Error("replay failed", zap.String("input", inputPath), zap.Error(err))
		return 1
	}

	if *reportPath != "" {
		if err := gateway.WriteReportFile(*reportPath, report); err != nil {
			logger.Error("could not write report", zap.String("report", *reportPath), zap.Error(err))
			return 1
		}
	}
	return 0
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Encoding == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Encoding
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
