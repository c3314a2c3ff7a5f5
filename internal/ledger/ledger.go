package ledger

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/metrics"
)

// Ledger — append-only реестр оформленных заказов за текущую сессию.
// Записи никогда не изменяются и не удаляются; реестр живёт только в памяти,
// поэтому нумерация заказов начинается заново в каждой сессии. Это
// задокументированное поведение исходного виджета, а не упущение.
type Ledger struct {
	mu      sync.RWMutex
	orders  map[string]domain.OrderRecord
	logger  *log.Entry
	metrics *metrics.StoreMetrics
	now     func() time.Time
}

// Option настраивает Ledger.
type Option func(*Ledger)

// WithClock подменяет источник времени; используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithMetrics подключает учёт заказов в метриках витрины.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// New создаёт пустой реестр заказов.
func New(logger *log.Entry, options ...Option) *Ledger {
	if logger == nil {
		logger = log.WithField("component", "order-ledger")
	}
	l := &Ledger{
		orders: make(map[string]domain.OrderRecord),
		logger: logger,
		now:    time.Now,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// NextIdentifier возвращает следующий свободный идентификатор заказа.
// Берётся максимум по существующим ключам, а не их количество: после
// ORD00001 и ORD00003 следующим будет ORD00004.
func (l *Ledger) NextIdentifier() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.FormatOrderID(l.maxIDLocked() + 1)
}

// Place фиксирует заказ по снимку корзины. Пустой снимок отклоняется с
// ErrCartEmpty до каких-либо изменений состояния. Позиции копируются:
// дальнейшие мутации живой корзины не могут изменить размещённый заказ.
func (l *Ledger) Place(snapshot []domain.CartLineItem, customerName, address, paymentMethod string) (domain.OrderRecord, error) {
	if len(snapshot) == 0 {
		return domain.OrderRecord{}, domain.ErrCartEmpty
	}

	l.mu.Lock()
	record := domain.OrderRecord{
		ID:            domain.FormatOrderID(l.maxIDLocked() + 1),
		CustomerName:  customerName,
		Address:       address,
		Items:         domain.CloneLineItems(snapshot),
		TotalMinor:    domain.TotalMinor(snapshot),
		Status:        domain.OrderStatusProcessing,
		PaymentMethod: paymentMethod,
		PlacedDate:    formatPlacedDate(l.now()),
	}
	l.orders[record.ID] = record
	l.mu.Unlock()

	l.metrics.RecordOrderPlaced(record.TotalMinor)
	l.logger.WithFields(log.Fields{
		"order_id": record.ID,
		"items":    len(record.Items),
		"total":    record.TotalMinor,
	}).Info("заказ оформлен")

	return cloneRecord(record), nil
}

// Lookup ищет заказ по идентификатору в произвольном регистре.
// Промах — это ожидаемый исход (опечатка пользователя), а не ошибка.
func (l *Ledger) Lookup(rawID string) (domain.OrderRecord, bool) {
	id := domain.NormalizeOrderID(rawID)

	l.mu.RLock()
	record, ok := l.orders[id]
	l.mu.RUnlock()

	l.metrics.RecordOrderLookup(ok)
	if !ok {
		return domain.OrderRecord{}, false
	}
	return cloneRecord(record), true
}

// Len возвращает количество заказов в реестре.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// maxIDLocked сканирует ключи и возвращает максимальный числовой суффикс;
// пустой реестр даёт 0. Вызывается под мьютексом.
func (l *Ledger) maxIDLocked() int {
	maxID := 0
	for id := range l.orders {
		n, err := domain.ParseOrderID(id)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return maxID
}

// cloneRecord возвращает копию записи с независимым списком позиций,
// чтобы реестр нельзя было изменить снаружи.
func cloneRecord(record domain.OrderRecord) domain.OrderRecord {
	record.Items = domain.CloneLineItems(record.Items)
	return record
}

// formatPlacedDate форматирует дату оформления как M/D/YYYY — так же, как
// toLocaleDateString('en-US') в исходном виджете.
func formatPlacedDate(t time.Time) string {
	return t.Format("1/2/2006")
}
