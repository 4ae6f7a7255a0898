// Command retailsim runs the day-by-day retail shop simulation, either as a
// scripted demo or interactively.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"RetailSim/internal/config"
	"RetailSim/internal/decision"
	"RetailSim/internal/engine"
	"RetailSim/internal/recorder"
	"RetailSim/internal/scheduler"
	"RetailSim/pkg/logger"
)

func main() {
	var (
		demo    bool
		cfgPath string
		envFile string
		days    int
		pace    string
	)
	flag.BoolVar(&demo, "demo", false, "run the scripted demo instead of prompting")
	flag.BoolVar(&demo, "d", false, "shorthand for -demo")
	flag.StringVar(&cfgPath, "config", "configs/retailsim.yaml", "path to the YAML config")
	flag.StringVar(&envFile, "env", "", "optional .env file (default: ./.env if present)")
	flag.IntVar(&days, "days", 0, "number of days to simulate (overrides config)")
	flag.StringVar(&pace, "pace", "", `advance one demo day per cron tick, e.g. "@every 2s"`)
	flag.Parse()

	if v := os.Getenv("RETAILSIM_CONFIG"); v != "" && !isFlagSet("config") {
		cfgPath = v
	}

	cfg, err := config.Load(cfgPath, envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if demo {
		cfg.Run.Mode = config.ModeDemo
	}
	if days > 0 {
		if cfg.Run.Mode == config.ModeDemo {
			cfg.Run.DemoDays = days
		} else {
			cfg.Economy.Days = days
		}
	}
	if pace != "" {
		cfg.Run.Pace = pace
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = baseLogger.Sync() }()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0o755); err != nil {
			baseLogger.Warn("create database directory", zap.Error(err))
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger.Named(baseLogger, "recorder"))
		if err != nil {
			baseLogger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine(cfg.Economy, logger.Named(baseLogger, "engine"))
	runDays := cfg.Days()

	var (
		src  decision.Source
		opts scheduler.Options
	)
	if cfg.Run.Mode == config.ModeDemo {
		src = decision.NewScripted(decision.DemoScript(), true)
		opts = scheduler.Options{Days: runDays, FullSummary: true}
		fmt.Printf("Running demo (non-interactive) for %d days\n", runDays)
	} else {
		src = decision.NewPrompt(os.Stdin, os.Stdout, eng.Economy().BasePrice)
		opts = scheduler.Options{Days: runDays, ShowHeader: true}
		fmt.Println("Interactive mode. Enter your decisions before each simulated day.")
	}

	run := recorder.NewRunInfo(cfg.Run.Mode, runDays, cfg.Economy)
	sched := scheduler.NewScheduler(ctx, eng, src, rec, run, os.Stdout, opts, logger.Named(baseLogger, "scheduler"))

	if cfg.Run.Pace != "" && cfg.Run.Mode == config.ModeDemo {
		_, err = sched.RunPaced(cfg.Run.Pace)
	} else {
		if cfg.Run.Pace != "" {
			baseLogger.Warn("pace ignored in interactive mode", zap.String("pace", cfg.Run.Pace))
		}
		_, err = sched.RunAll()
	}

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		baseLogger.Info("run interrupted")
	default:
		baseLogger.Error("run failed", zap.Error(err))
		_ = baseLogger.Sync()
		os.Exit(1)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
