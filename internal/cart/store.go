package cart

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/metrics"
)

// Listener получает снимок корзины после каждой мутации.
// Это сигнал "перерисуй корзину" из исходного виджета.
type Listener func(snapshot []domain.CartLineItem)

// Store владеет списком позиций корзины. Все мутации проходят через его
// методы и выполняются в порядке "изменить — сохранить — уведомить":
// сначала состояние, затем персистентный слот, затем подписчики.
type Store struct {
	mu        sync.RWMutex
	items     []domain.CartLineItem
	state     domain.StateStore
	logger    *log.Entry
	metrics   *metrics.StoreMetrics
	listeners []Listener
}

// NewStore создаёт корзину поверх персистентного слота.
// Метрики опциональны: nil отключает учёт.
func NewStore(state domain.StateStore, storeMetrics *metrics.StoreMetrics, logger *log.Entry) *Store {
	if logger == nil {
		logger = log.WithField("component", "cart-store")
	}
	return &Store{
		state:   state,
		logger:  logger,
		metrics: storeMetrics,
	}
}

// Subscribe регистрирует подписчика на изменения корзины.
func (s *Store) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Restore загружает ранее сохранённую корзину из слота. Отсутствующее или
// испорченное состояние даёт пустую корзину: ошибка восстановления никогда
// не доходит до вызывающего.
func (s *Store) Restore() {
	payload, err := s.state.Load()
	if err != nil {
		s.logger.WithError(err).Warn("failed to load cart state, starting empty")
		return
	}
	if len(payload) == 0 {
		return
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.WithError(err).Warn("malformed cart state, starting empty")
		return
	}
	// Отбрасываем позиции, нарушающие инварианты: повреждённый слот не должен
	// протащить в корзину отрицательные цены или нулевые количества.
	restored := make([]domain.CartLineItem, 0, len(items))
	for _, li := range items {
		if len(li.ValidateInvariants()) != 0 {
			s.logger.WithField("item", li.Name).Warn("dropping invalid restored line item")
			continue
		}
		restored = append(restored, li)
	}

	s.mu.Lock()
	s.items = restored
	count := domain.CountItems(s.items)
	s.mu.Unlock()

	s.metrics.SetCartItems(count)
	s.notify()
	s.logger.WithField("items", len(restored)).Info("корзина восстановлена из хранилища")
}

// Add добавляет товар в корзину. Повторное добавление того же имени
// увеличивает количество на единицу; цена при этом остаётся первой
// сохранённой (first write wins), даже если передана другая.
func (s *Store) Add(name, rawPrice string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrItemNameRequired
	}
	priceMinor, err := domain.ParsePriceMinor(rawPrice)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if idx := s.findLocked(name); idx >= 0 {
		s.items[idx].Quantity++
	} else {
		s.items = append(s.items, domain.CartLineItem{Name: name, PriceMinor: priceMinor, Quantity: 1})
	}
	s.persistLocked()
	s.mu.Unlock()

	s.metrics.RecordCartAdd()
	s.notify()
	s.logger.WithField("item", name).Debug("item added to cart")
	return nil
}

// SetQuantity выставляет количество позиции. Нечисловой ввод игнорируется:
// частично отредактированное поле формы — это не ошибка. Количество <= 0
// эквивалентно удалению позиции.
func (s *Store) SetQuantity(name, rawQuantity string) {
	quantity, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil {
		s.logger.WithField("item", name).Debug("ignoring non-numeric quantity edit")
		return
	}
	if quantity <= 0 {
		s.Remove(name)
		return
	}

	s.mu.Lock()
	if idx := s.findLocked(name); idx >= 0 {
		s.items[idx].Quantity = quantity
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Remove удаляет позицию по имени; отсутствие позиции — не ошибка.
func (s *Store) Remove(name string) {
	s.mu.Lock()
	removed := false
	if idx := s.findLocked(name); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		removed = true
	}
	s.persistLocked()
	s.mu.Unlock()

	if removed {
		s.metrics.RecordCartRemoval()
	}
	s.notify()
}

// Clear безусловно опустошает корзину.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()

	s.metrics.RecordCartClear()
	s.notify()
}

// TotalMinor возвращает сумму корзины в минимальных единицах; 0 для пустой.
func (s *Store) TotalMinor() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.TotalMinor(s.items)
}

// ItemCount возвращает суммарное количество единиц; 0 для пустой корзины.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CountItems(s.items)
}

// IsEmpty сообщает, пуста ли корзина.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// Snapshot возвращает независимую копию текущих позиций для рендера и checkout.
func (s *Store) Snapshot() []domain.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneLineItems(s.items)
}

// findLocked ищет позицию по имени; вызывается под мьютексом.
func (s *Store) findLocked(name string) int {
	for i, li := range s.items {
		if li.Name == name {
			return i
		}
	}
	return -1
}

// persistLocked сериализует корзину в слот; вызывается под мьютексом.
// Ошибка записи логируется и не прерывает мутацию: слот — это best effort,
// как и localStorage в исходном виджете.
func (s *Store) persistLocked() {
	payload, err := json.Marshal(s.itemsOrEmptyLocked())
	if err != nil {
		s.logger.WithError(err).Warn("failed to serialize cart state")
		return
	}
	if err := s.state.Save(payload); err != nil {
		s.logger.WithError(err).Warn("failed to persist cart state")
	}
	s.metrics.SetCartItems(domain.CountItems(s.items))
}

// itemsOrEmptyLocked гарантирует, что пустая корзина сериализуется как [],
// а не как null.
func (s *Store) itemsOrEmptyLocked() []domain.CartLineItem {
	if s.items == nil {
		return []domain.CartLineItem{}
	}
	return s.items
}

// notify рассылает снимок подписчикам вне мьютекса, чтобы подписчик мог
// читать состояние корзины.
func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	snapshot := domain.CloneLineItems(s.items)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}
