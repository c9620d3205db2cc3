package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theimaginaryfoundation/party-survey/survey"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if cfg.PrintSchema {
		b, err := survey.ProfileSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	store := survey.NewStore(cfg.DataPath, logger)
	sess := survey.NewSession(store, in, out, logger)
	logger.Debug("session starting", zap.String("session_id", sess.ID), zap.String("data", cfg.DataPath))

	res, err := sess.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("session finished",
		zap.String("session_id", sess.ID),
		zap.String("actual", string(res.Actual)),
		zap.Bool("saved", res.Saved))
	return nil
}

// newLogger writes JSON logs to stderr. The terminal belongs to the survey, so only warnings
// and errors are shown unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()

	// Avoid mutating the global FlagSet if called from tests.
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path to the party profile file (.json, .yaml or .yml)")
	fs.BoolVar(&cfg.PrintSchema, "schema", false, "Print the JSON Schema of the profile file and exit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Debug logging to stderr")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/party-survey")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/party-survey -data profiles/party_data.yaml -verbose")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/party-survey -schema > party_data.schema.json")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.DataPath = filepath.Clean(cfg.DataPath)
	return cfg, nil
}
