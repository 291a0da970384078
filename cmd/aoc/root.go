package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/aoc/inputs"
	"svw.info/aoc/internal/adapters/terminal"
	"svw.info/aoc/internal/config"
	"svw.info/aoc/internal/infrastructure/metrics"
	"svw.info/aoc/internal/infrastructure/storage"
	"svw.info/aoc/internal/ports"
	"svw.info/aoc/internal/puzzles"
	"svw.info/aoc/internal/usecase"
)

// app holds what the persistent pre-run builds for every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath  string
	inputDir    string
	logLevel    string
	verbose     bool
	metricsFile string
	jsonOut     bool
	noColor     bool

	cfg      config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
	examples *inputs.Examples
	printer  *terminal.Printer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 solutions, days 1 through 15",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file (default "+config.DefaultFile+" if present)")
	f.StringVar(&a.inputDir, "input-dir", "", "directory holding dayNN.txt inputs")
	f.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	f.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus text metrics here after the run")
	f.BoolVar(&a.jsonOut, "json", false, "print results as JSON")
	f.BoolVar(&a.noColor, "no-color", false, "never style output")

	root.AddCommand(a.runCmd(), a.listCmd(), a.verifyCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadOptional(config.DefaultFile)
	}
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		a.cfg.InputDir = a.inputDir
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = strings.ToLower(a.logLevel)
	}
	if flags.Changed("metrics-file") {
		a.cfg.MetricsFile = a.metricsFile
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	lvl := zapcore.InfoLevel
	switch a.cfg.LogLevel {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zc.EncoderConfig), zapcore.AddSync(a.stderr), zc.Level)
	a.logger = zap.New(core).With(zap.String("run_id", uuid.NewString()))
	a.logger.Debug("config", zap.String("input_dir", a.cfg.InputDir), zap.String("log_level", a.cfg.LogLevel))

	a.recorder = metrics.New()
	a.examples = inputs.NewExamples()
	if a.noColor || !isTerminal(a.stdout) {
		a.printer = terminal.NewPlain(a.stdout)
	} else {
		a.printer = terminal.New(a.stdout)
	}
	a.printer.JSON = a.jsonOut
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// finish flushes metrics and logs after a command, whether or not it failed.
func (a *app) finish(err error) error {
	if terr := a.teardown(); err == nil {
		err = terr
	}
	return err
}

func (a *app) teardown() error {
	if a.cfg.MetricsFile != "" && a.recorder != nil {
		if err := a.recorder.WriteFile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Info("metrics written", zap.String("path", a.cfg.MetricsFile))
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

// service wires the use case to the file inputs, or to the embedded examples.
func (a *app) service(example bool) *usecase.Service {
	var src ports.InputSource = storage.NewFS(a.cfg.InputDir)
	if example {
		src = a.examples
	}
	return usecase.NewService(puzzles.Default(), src, a.examples, a.recorder, a.logger)
}
