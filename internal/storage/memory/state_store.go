package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

// stateStoreInMemory — простая in-memory реализация StateStore.
// Используется в тестах и в эфемерном режиме, когда корзину не нужно
// переживать перезапуск.
type stateStoreInMemory struct {
	mu      sync.RWMutex
	payload []byte
}

// NewStateStore возвращает in-memory слот состояния для локальной разработки и тестов.
func NewStateStore() domain.StateStore {
	return &stateStoreInMemory{}
}

// Load возвращает последнее сохранённое состояние; до первого Save — пустой payload.
func (s *stateStoreInMemory) Load() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.payload == nil {
		return nil, nil
	}
	// Отдаём копию, чтобы избежать непредсказуемых мутаций извне.
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out, nil
}

// Save перезаписывает слот целиком.
func (s *stateStoreInMemory) Save(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = make([]byte, len(payload))
	copy(s.payload, payload)
	return nil
}

// Ping всегда успешен: память доступна, пока жив процесс.
func (s *stateStoreInMemory) Ping() error {
	return nil
}

var _ domain.StateStore = (*stateStoreInMemory)(nil)
