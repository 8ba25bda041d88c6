package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/adapters/llm"
	"github.com/PabloGalante/mawazo/internal/adapters/storage/entries"
	firestorestore "github.com/PabloGalante/mawazo/internal/adapters/storage/firestore"
	memstore "github.com/PabloGalante/mawazo/internal/adapters/storage/memory"
	redisstore "github.com/PabloGalante/mawazo/internal/adapters/storage/redis"
	sqlitestore "github.com/PabloGalante/mawazo/internal/adapters/storage/sqlite"
	"github.com/PabloGalante/mawazo/internal/app/ai"
	"github.com/PabloGalante/mawazo/internal/app/journal"
	"github.com/PabloGalante/mawazo/internal/config"
	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

// app holds the wired services for one command run.
type app struct {
	repo     *entries.Repository
	journal  *journal.Service
	registry  *llm.Registry
	connector *llm.Connector
	gateway   *ai.Gateway

	closers []io.Closer
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	store, err := openBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if c, ok := store.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	a.repo = entries.NewRepository(store)
	a.journal = journal.NewService(a.repo)

	a.registry = llm.NewRegistry(nil)
	a.connector = llm.NewConnector(a.registry, func(ctx context.Context) (llm.Backend, error) {
		return buildBackend(ctx, cfg)
	}, cfg.SurfaceEnabled)
	a.gateway = ai.NewGateway(a.registry)

	// Without a host every AI task answers with its fallback; warm-up retries.
	if err := a.connector.Connect(ctx); err != nil {
		observability.Logger().Warn("AI host unavailable, continuing without it", zap.Error(err))
	}
	return a, nil
}

func (a *app) Close() error {
	if a.connector != nil {
		a.connector.Disconnect()
	}
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Storage: memory, sqlite, redis or firestore
func openBlobStore(ctx context.Context, cfg *config.Config) (domain.BlobStore, error) {
	log := observability.Logger().With(zap.String("backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.StorageSQLite:
		log.Info("using sqlite storage", zap.String("path", cfg.SQLitePath))
		s, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error initializing sqlite store: %w", err)
		}
		return s, nil

	case config.StorageRedis:
		log.Info("using redis storage", zap.String("addr", cfg.RedisAddr))
		s, err := redisstore.NewStore(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("error initializing redis store: %w", err)
		}
		return s, nil

	case config.StorageFirestore:
		log.Info("using firestore storage", zap.String("project", cfg.GCPProjectID))
		s, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			return nil, fmt.Errorf("error initializing firestore store: %w", err)
		}
		return s, nil

	default:
		log.Info("using in-memory storage")
		return memstore.NewBlobStore(), nil
	}
}

// buildBackend is swapped in tests to simulate an unreachable model.
var buildBackend = newBackend

// Choose between mock and Gemini
func newBackend(ctx context.Context, cfg *config.Config) (llm.Backend, error) {
	if cfg.UseMockLLM {
		observability.Logger().Info("using mock AI host")
		return llm.NewMockHost(), nil
	}

	observability.Logger().Info("using gemini AI host", zap.String("model", cfg.ModelName))
	host, err := llm.NewGeminiHost(ctx, llm.GeminiConfig{
		Project:   cfg.GCPProjectID,
		Location:  cfg.GCPLocation,
		APIKey:    cfg.GeminiAPIKey,
		ModelName: cfg.ModelName,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing gemini host: %w", err)
	}
	return host, nil
}

// withApp runs fn against freshly wired services and closes them afterwards.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			observability.Logger().Warn("closing resources", zap.Error(err))
		}
	}()
	return fn(a)
}
