package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

const opTimeout = 5 * time.Second

// stateStorePostgres хранит слот состояния корзины одной строкой в таблице
// storefront_state. Семантика та же, что у файлового backend: один ключ,
// полная перезапись payload при каждом сохранении.
type stateStorePostgres struct {
	db      *sql.DB
	slotKey string
}

// NewStateStore создаёт PostgreSQL-реализацию StateStore для указанного слота.
func NewStateStore(store *Store, slotKey string) domain.StateStore {
	return &stateStorePostgres{db: store.DB(), slotKey: slotKey}
}

// Load возвращает текущий payload слота; отсутствие строки — это "состояния нет".
func (s *stateStorePostgres) Load() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM storefront_state WHERE slot_key = $1
	`, s.slotKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load state slot: %w", err)
	}
	return payload, nil
}

// Save перезаписывает слот целиком через upsert.
func (s *stateStorePostgres) Save(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storefront_state (slot_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot_key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`, s.slotKey, payload)
	if err != nil {
		return fmt.Errorf("save state slot: %w", err)
	}
	return nil
}

// Ping проверяет доступность базы для health-проверок.
func (s *stateStorePostgres) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStateUnavailable, err)
	}
	return nil
}

var _ domain.StateStore = (*stateStorePostgres)(nil)
