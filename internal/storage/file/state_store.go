package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

// stateStoreFile хранит состояние корзины в одном JSON-файле.
// Это дефолтный backend: ближайший аналог localStorage-слота исходного виджета.
type stateStoreFile struct {
	mu   sync.Mutex
	path string
}

// NewStateStore возвращает файловый слот состояния по указанному пути.
// Родительский каталог создаётся при первом сохранении.
func NewStateStore(path string) domain.StateStore {
	return &stateStoreFile{path: path}
}

// Load читает слот; отсутствующий файл означает "состояния ещё нет".
func (s *stateStoreFile) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return payload, nil
}

// Save атомарно перезаписывает слот через временный файл и rename.
func (s *stateStoreFile) Save(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".uneclaire-state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Ping проверяет, что каталог состояния существует или может быть создан.
func (s *stateStoreFile) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStateUnavailable, err)
	}
	return nil
}

var _ domain.StateStore = (*stateStoreFile)(nil)
