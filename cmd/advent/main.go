// Command advent runs the Advent of Code 2020 solvers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/advent-cli/internal/adapters/driven/config/file"
	inputfile "github.com/custodia-labs/advent-cli/internal/adapters/driven/input/file"
	"github.com/custodia-labs/advent-cli/internal/adapters/driven/input/remote"
	"github.com/custodia-labs/advent-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/advent-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
	"github.com/custodia-labs/advent-cli/internal/core/services"
	"github.com/custodia-labs/advent-cli/internal/days"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, bootstrap)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters for configDir into the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	local := inputfile.NewSource(settings.Inputs)
	var inputs driven.InputSource = local
	if settings.Fetch.IsConfigured() {
		fetcher, err := remote.NewFetcher(settings.Fetch, nil, nil)
		if err != nil {
			return nil, err
		}
		inputs = remote.NewCachingSource(local, fetcher)
	}

	var runs driven.RunStore
	closeFn := func() error { return nil }
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		runs = store
		closeFn = store.Close
	}

	return &cli.Services{
		Runner:   services.NewRunner(days.Catalog(), inputs, runs, settings.Run),
		Settings: settingsService,
		History:  services.NewHistoryService(runs),
		Close:    closeFn,
	}, nil
}
