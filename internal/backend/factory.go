package backend

import (
	"context"
	"fmt"

	"fintrack/internal/amqp"
	"fintrack/internal/kv/memory"
	"fintrack/internal/kv/sheets"
	"fintrack/internal/kv/sqlite"
	"fintrack/internal/log"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateAdapter implements Factory.CreateAdapter
func (f *DefaultFactory) CreateAdapter(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	result, err := f.createAdapter(ctx, config)
	if err != nil {
		return nil, err
	}

	// Change notifications are optional regardless of backend.
	if config.AMQPURL != "" {
		client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without notifications",
				log.FieldError, err.Error())
		} else {
			f.logger.Info("Initialized AMQP notifier",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			result.Notifier = client
			result.Cleanup = chainCleanup(result.Cleanup, client.Close)
		}
	}

	return result, nil
}

func (f *DefaultFactory) createAdapter(ctx context.Context, config Config) (*Result, error) {
	switch config.Type {
	case SQLite:
		repo, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite adapter: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &Result{Adapter: repo, Cleanup: repo.Close}, nil

	case Sheets:
		cli, err := sheets.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets adapter: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend")
		return &Result{Adapter: cli}, nil

	case Memory:
		f.logger.Info("Initialized memory backend")
		return &Result{Adapter: memory.New()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func chainCleanup(a CleanupFunc, b CleanupFunc) CleanupFunc {
	if a == nil {
		return b
	}
	return func() error {
		errA := a()
		if errB := b(); errB != nil {
			return errB
		}
		return errA
	}
}
