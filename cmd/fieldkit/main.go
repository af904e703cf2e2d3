// Package main is the entry point for the fieldkit terminal form demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/fieldkit/internal/app"
	"github.com/dshills/fieldkit/internal/config"
	"github.com/dshills/fieldkit/internal/config/loader"
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/render/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

type options struct {
	configPath  string
	logLevel    string
	logFile     string
	dump        bool
	printConfig bool
	noWatch     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfgOpts := config.Options{
		Path:      opts.configPath,
		Env:       loader.NewEnvLoader(loader.EnvPrefix),
		Overrides: overrides(opts),
	}
	settings, err := config.Load(cfgOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration:\n%v\n", err)
		return exitConfig
	}

	if opts.printConfig {
		data, err := config.Encode(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
		os.Stdout.Write(data)
		return exitOK
	}

	logger, closeLog, err := openLogger(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer closeLog()

	application, err := app.New(app.Options{
		Config:   cfgOpts,
		Settings: settings,
		Logger:   logger,
		Watch:    opts.configPath != "" && !opts.noWatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return exitFailure
	}

	term, err := backend.NewTerminal()
	if err != nil {
		application.Close()
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return exitFailure
	}
	if err := application.SetBackend(term); err != nil {
		application.Close()
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := application.Run(ctx)

	// The terminal must be restored before anything is printed.
	application.Close()

	if runErr != nil && !errors.Is(runErr, app.ErrQuit) && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitFailure
	}

	if opts.dump {
		doc, err := application.Form().DumpJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
		fmt.Println(doc)
	}

	return exitOK
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", os.Getenv(loader.EnvConfigFile), "Path to configuration file (TOML, YAML or JSON)")
	flag.StringVar(&opts.configPath, "c", os.Getenv(loader.EnvConfigFile), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&opts.dump, "dump", false, "Print the form state as JSON on exit")
	flag.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as TOML and exit")
	flag.BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the configuration file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fieldkit - terminal text field demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fieldkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %-30s config file when -config is not given\n", loader.EnvConfigFile)
		fmt.Fprintf(os.Stderr, "  %-30s e.g. FIELDKIT_LOG_LEVEL, FIELDKIT_TICK_RATE\n", loader.EnvPrefix+"*")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fieldkit                          Edit the built-in demo form\n")
		fmt.Fprintf(os.Stderr, "  fieldkit -c form.toml -dump       Edit a configured form, print it on exit\n")
		fmt.Fprintf(os.Stderr, "  fieldkit -print-config > f.toml   Write the effective configuration\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(exitOK)
	}

	if showVersion {
		fmt.Printf("fieldkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(exitOK)
	}

	if opts.logLevel != "" {
		if _, ok := logging.ParseLevel(opts.logLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(exitConfig)
		}
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		os.Exit(exitConfig)
	}

	return opts
}

// overrides turns logging flags into the highest-priority config layer.
func overrides(opts options) map[string]any {
	m := make(map[string]any)
	if opts.logLevel != "" {
		loader.SetPath(m, "logging.level", opts.logLevel)
	}
	if opts.logFile != "" {
		loader.SetPath(m, "logging.file", opts.logFile)
	}
	return m
}

// openLogger writes to the configured file. Without one, logs are
// discarded since the terminal belongs to the form.
func openLogger(s config.LoggingSettings) (*logging.Logger, func(), error) {
	if s.File == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := logging.New(logging.Config{
		Level:  s.LogLevel(),
		Output: f,
		Prefix: "fieldkit",
	})
	return logger, func() { _ = f.Close() }, nil
}
