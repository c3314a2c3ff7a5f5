package app

import (
	"os"
	"path/filepath"
	"time"
)

// StorageDriver выбирает backend персистентного слота корзины.
type StorageDriver string

const (
	// StorageDriverFile — JSON-файл на диске; дефолт, аналог localStorage.
	StorageDriverFile StorageDriver = "file"
	// StorageDriverMemory — эфемерный слот в памяти, корзина живёт одну сессию.
	StorageDriverMemory StorageDriver = "memory"
	// StorageDriverPostgres — слот в таблице storefront_state.
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает настройки запуска витрины.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера /metrics и /healthz.
	MetricsAddr string
	// StorageDriver — backend слота состояния корзины.
	StorageDriver StorageDriver
	// StateFilePath — путь к файлу состояния для file-драйвера.
	StateFilePath string
	// PostgresDSN — строка подключения для postgres-драйвера.
	PostgresDSN string
	// ContactSendDelay — задержка имитации отправки контактной формы.
	ContactSendDelay time.Duration
}

// DefaultConfig возвращает базовую конфигурацию витрины.
func DefaultConfig() Config {
	return Config{
		MetricsAddr:      ":9090",
		StorageDriver:    StorageDriverFile,
		StateFilePath:    filepath.Join(".uneclaire", "cart.json"),
		ContactSendDelay: 1500 * time.Millisecond,
	}
}

// ConfigFromEnv формирует конфигурацию, позволяя переопределить настройки
// через переменные окружения.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("UNECLAIRE_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("UNECLAIRE_STORAGE"); v != "" {
		cfg.StorageDriver = StorageDriver(v)
	}
	if v := os.Getenv("UNECLAIRE_STATE_FILE"); v != "" {
		cfg.StateFilePath = v
	}
	if v := os.Getenv("UNECLAIRE_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("UNECLAIRE_CONTACT_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ContactSendDelay = d
		}
	}

	return cfg
}
