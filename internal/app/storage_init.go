package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/storage/file"
	"github.com/vladislavdragonenkov/uneclaire/internal/storage/memory"
	"github.com/vladislavdragonenkov/uneclaire/internal/storage/postgres"
)

// stateSlotKey — ключ слота корзины; унаследован от localStorage-ключа
// исходного виджета.
const stateSlotKey = "uneclaireCart"

// initStateStore создаёт слот состояния по выбранному драйверу и возвращает
// функцию освобождения ресурсов.
func initStateStore(ctx context.Context, cfg Config, logger *log.Entry) (domain.StateStore, func(), error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Info("используем эфемерный in-memory слот состояния")
		return memory.NewStateStore(), func() {}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, nil, fmt.Errorf("postgres storage requires UNECLAIRE_POSTGRES_DSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres state store: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("prepare postgres state store: %w", err)
		}
		logger.Info("слот состояния подключён к postgres")
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("failed to close postgres store")
			}
		}
		return postgres.NewStateStore(store, stateSlotKey), cleanup, nil

	case StorageDriverFile, "":
		logger.WithField("path", cfg.StateFilePath).Info("используем файловый слот состояния")
		return file.NewStateStore(cfg.StateFilePath), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
