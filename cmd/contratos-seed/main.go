// contratos-seed loads the JSON datasets into a SQLite database so the
// server can run with DATA_BACKEND=sqlite. It is the only writer the
// database ever sees.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"contratos/assets"
	"contratos/internal/cli"
	"contratos/internal/dataset/memory"
	applog "contratos/internal/log"
)

func main() {
	dataDir := flag.String("data", "", "directory with the JSON datasets (default: embedded data)")
	dbPath := flag.String("db", "", "SQLite database path (default: SQLITE_DB_PATH)")
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentSeed)
	cfg := cli.LoadAndValidateConfig(logger)

	path := *dbPath
	if path == "" {
		path = cfg.SQLiteDBPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		store *memory.Store
		err   error
	)
	if *dataDir != "" {
		store, err = memory.Load(ctx, os.DirFS(*dataDir), ".")
	} else {
		store, err = memory.Load(ctx, assets.DataFS, assets.DataDir)
	}
	if err != nil {
		logger.Error("Failed to load datasets", applog.FieldError, err)
		os.Exit(1)
	}

	contracts, _ := store.Contracts(ctx)
	imgContracts, _ := store.ImageUsageContracts(ctx)
	imgValues, _ := store.ImageUsageValues(ctx)

	repo := cli.InitSQLite(logger, path)
	defer repo.Close()

	if err := repo.Seed(ctx, contracts, imgContracts, imgValues); err != nil {
		logger.Error("Seed failed",
			applog.FieldOperation, applog.OpSeed,
			applog.FieldError, err,
			applog.FieldPath, path)
		os.Exit(1)
	}

	logger.Info("Seed complete",
		applog.FieldOperation, applog.OpSeed,
		applog.FieldPath, path,
		"contracts", len(contracts),
		"image_usage_contracts", len(imgContracts),
		"image_usage_values", len(imgValues))
}
