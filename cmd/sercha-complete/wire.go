package main

import (
	"fmt"

	"github.com/custodia-labs/sercha-complete/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-complete/internal/adapters/driven/storage"
	"github.com/custodia-labs/sercha-complete/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-complete/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-complete/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-complete/internal/core/services"
	"github.com/custodia-labs/sercha-complete/internal/logger"
	"github.com/custodia-labs/sercha-complete/internal/transformers"
)

// Config keys.
const (
	keySources     = "sources"
	keyPipeline    = "pipeline"
	keyHistoryPath = "history.path"
	keyConcurrency = "completion.concurrency"
)

// historyInMemory selects the in-memory history store.
const historyInMemory = "memory"

// bootstrap loads the configuration at configPath and builds the services.
func bootstrap(configPath string) (*cli.Services, error) {
	var (
		cfg *file.ConfigStore
		err error
	)
	if configPath != "" {
		cfg, err = file.NewConfigStoreAt(configPath)
	} else {
		cfg, err = file.NewConfigStore("")
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("Config: %s", cfg.Path())

	history, closeHistory, err := openHistory(cfg.GetString(keyHistoryPath))
	if err != nil {
		return nil, err
	}

	completion, err := buildCompletion(cfg, history)
	if err != nil {
		_ = closeHistory()
		return nil, err
	}

	return &cli.Services{
		Completion: completion,
		History:    services.NewHistoryService(history),
		Watcher:    cfg,
		Reload: func() (driving.CompletionService, error) {
			return buildCompletion(cfg, history)
		},
		Close: closeHistory,
	}, nil
}

// openHistory opens the history store. An empty path selects the default
// SQLite location and "memory" keeps history for the process only.
func openHistory(path string) (driven.HistoryStore, func() error, error) {
	if path == historyInMemory {
		return memory.NewHistoryStore(), func() error { return nil }, nil
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}
	logger.Debug("History database: %s", store.Path())
	return store.HistoryStore(), store.Close, nil
}

// buildCompletion creates a completion service from the sources and pipeline in cfg.
func buildCompletion(cfg driven.ConfigStore, history driven.HistoryStore) (*services.CompletionService, error) {
	var specs []domain.SourceSpec
	if raw, ok := cfg.Get(keySources); ok {
		var err error
		if specs, err = services.DecodeSourceSpecs(raw); err != nil {
			return nil, fmt.Errorf("sources: %w", err)
		}
	}

	var stages []domain.StageSpec
	if raw, ok := cfg.Get(keyPipeline); ok {
		var err error
		if stages, err = services.DecodeStageSpecs(raw); err != nil {
			return nil, err
		}
	}

	registry := transformers.NewRegistry[domain.Suggestion]()
	transformers.RegisterDefaults(registry)
	pipeline, err := registry.BuildPipeline(stages)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if len(specs) == 0 {
		logger.Warn("No sources configured in %s", cfg.Path())
	}

	svc := services.NewCompletionService(specs, storage.NewFactory(history), pipeline)
	svc.SetHistoryStore(history)
	svc.SetConcurrency(cfg.GetInt(keyConcurrency))
	return svc, nil
}
