package domain

// StateStore описывает единственный персистентный слот состояния корзины —
// аналог строкового ключа в localStorage исходного виджета.
type StateStore interface {
	// Load возвращает ранее сохранённое состояние. Отсутствие состояния —
	// это не ошибка: возвращается пустой payload и nil.
	Load() ([]byte, error)
	// Save перезаписывает слот целиком.
	Save(payload []byte) error
	// Ping проверяет доступность хранилища для health-проверок.
	Ping() error
}
