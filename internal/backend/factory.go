package backend

import (
	"context"
	"fmt"
	"os"

	"contratos/assets"
	"contratos/internal/dataset/memory"
	applog "contratos/internal/log"
	"contratos/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentDataset),
	}
}

// CreateSource implements Factory.CreateSource
func (f *DefaultFactory) CreateSource(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteSource(config)
	case DirBackend:
		return f.createDirSource(ctx, config)
	default:
		return f.createEmbedSource(ctx)
	}
}

func (f *DefaultFactory) createSQLiteSource(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldBackend, SQLiteBackend,
		applog.FieldPath, config.SQLiteDBPath)

	return &Result{Source: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createDirSource(ctx context.Context, config Config) (*Result, error) {
	store, err := memory.Load(ctx, os.DirFS(config.DataDir), ".")
	if err != nil {
		return nil, fmt.Errorf("load datasets from %s: %w", config.DataDir, err)
	}

	f.logger.Info("Initialized directory backend",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldBackend, DirBackend,
		applog.FieldPath, config.DataDir)

	return &Result{Source: store}, nil
}

func (f *DefaultFactory) createEmbedSource(ctx context.Context) (*Result, error) {
	store, err := memory.Load(ctx, assets.DataFS, assets.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded datasets: %w", err)
	}

	f.logger.Info("Initialized embedded backend",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldBackend, EmbedBackend)

	return &Result{Source: store}, nil
}
