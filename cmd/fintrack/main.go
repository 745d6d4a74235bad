package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/analytics"
	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

func main() {
	_ = godotenv.Load()

	frame := flag.String("frame", "monthly", "time frame for the spending summary (daily|monthly|yearly)")
	flag.Parse()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err.Error())
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err.Error())
		os.Exit(1)
	}
	if err := backendCfg.Validate(); err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	factory := backend.NewFactory(logger)
	result, err := factory.CreateAdapter(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend",
			log.FieldBackend, cfg.DataBackend, log.FieldError, err.Error())
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Warn("Backend cleanup failed", log.FieldError, err.Error())
			}
		}()
	}

	st := store.New(result.Adapter, logger, cfg.PersistTimeout)
	if result.Notifier != nil {
		st.AttachNotifier(result.Notifier)
	}

	// Per-slot load failures fall back to defaults; report and carry on.
	if err := st.Load(ctx); err != nil {
		logger.Warn("Some slots loaded with defaults", log.FieldError, err.Error())
	}

	summary := report.Build(
		st.Expenses(), st.Goals(), st.Balance(), st.User(),
		analytics.TimeFrame(*frame), time.Now())
	fmt.Print(summary.Render())
}
