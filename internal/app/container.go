package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/blinkvocab/internal/adapter/httpapi"
	adapterrepo "github.com/eslsoft/blinkvocab/internal/adapter/repository"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/config"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/provider"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/server"
	"github.com/eslsoft/blinkvocab/internal/usecase"
)

// Container aggregates the application dependencies.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
	Store  *database.Store
}

// Initialize builds the application container: config, logger, storage,
// usecases and the HTTP server. The returned cleanup closes the store.
func Initialize(ctx context.Context) (*Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	store, cleanup, err := database.NewStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snapshotRepo := adapterrepo.NewProfileSnapshotRepository(store)
	wordCacheRepo := adapterrepo.NewWordCacheRepository(store)
	providerClient := provider.New(cfg.Provider)

	progress := usecase.NewProgressUsecase(snapshotRepo, logger)
	if err := progress.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}

	words := usecase.NewWordUsecase(wordCacheRepo, providerClient, logger)
	quiz := usecase.NewQuizUsecase(progress)
	storeUC := usecase.NewStoreUsecase(progress, providerClient, logger)

	handler := httpapi.NewHandler(progress, words, quiz, storeUC, logger)
	srv := server.NewServer(cfg, logger, handler)

	return &Container{
		Logger: logger,
		Server: srv,
		Store:  store,
	}, cleanup, nil
}
