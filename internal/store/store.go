package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/bookshelf/internal/config"
	"github.com/baharkarakas/bookshelf/internal/db"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
	"github.com/baharkarakas/bookshelf/internal/repository/memory"
	"github.com/baharkarakas/bookshelf/internal/repository/mongodb"
	"github.com/baharkarakas/bookshelf/internal/repository/postgres"
)

// Open connects the backend named by cfg.DatabaseURL and returns its
// repositories. Callers own Close.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.Repositories, error) {
	switch cfg.Driver() {
	case "mongo":
		client, err := db.NewMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return repo.Repositories{}, fmt.Errorf("mongo connect: %w", err)
		}
		if err := mongodb.EnsureIndexes(ctx, client, cfg.DatabaseName); err != nil {
			_ = client.Disconnect(ctx)
			return repo.Repositories{}, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info("store ready", "driver", "mongo", "db", cfg.DatabaseName)
		return mongodb.NewRepositories(client, cfg.DatabaseName), nil

	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repo.Repositories{}, fmt.Errorf("postgres connect: %w", err)
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool, log); err != nil {
				pool.Close()
				return repo.Repositories{}, fmt.Errorf("migrations: %w", err)
			}
		}
		log.Info("store ready", "driver", "postgres")
		return postgres.NewRepositories(pool), nil

	case "memory":
		log.Warn("store ready", "driver", "memory", "note", "data is lost on exit")
		return memory.NewRepositories(), nil
	}
	return repo.Repositories{}, fmt.Errorf("unsupported DATABASE_URL scheme: %q", cfg.DatabaseURL)
}
