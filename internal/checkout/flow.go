package checkout

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/cart"
	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/ledger"
)

// Flow связывает корзину и реестр заказов в сценарий оформления:
// валидация формы → снимок корзины → ledger.Place → очистка корзины.
// Любая ошибка валидации прерывает сценарий до изменений состояния.
type Flow struct {
	cart   *cart.Store
	ledger *ledger.Ledger
	logger *log.Entry
}

// NewFlow создаёт сценарий оформления заказа.
func NewFlow(cartStore *cart.Store, orderLedger *ledger.Ledger, logger *log.Entry) *Flow {
	if logger == nil {
		logger = log.WithField("component", "checkout")
	}
	return &Flow{
		cart:   cartStore,
		ledger: orderLedger,
		logger: logger,
	}
}

// Submit оформляет заказ по текущему состоянию корзины и возвращает запись
// для показа пользователю. После успешного размещения корзина очищается.
func (f *Flow) Submit(customerName, address, paymentMethod string) (domain.OrderRecord, error) {
	customerName = strings.TrimSpace(customerName)
	address = strings.TrimSpace(address)
	paymentMethod = strings.TrimSpace(paymentMethod)

	if customerName == "" {
		return domain.OrderRecord{}, domain.ErrCustomerRequired
	}
	if address == "" {
		return domain.OrderRecord{}, domain.ErrAddressRequired
	}
	if paymentMethod == "" {
		return domain.OrderRecord{}, domain.ErrPaymentMethodRequired
	}

	record, err := f.ledger.Place(f.cart.Snapshot(), customerName, address, paymentMethod)
	if err != nil {
		return domain.OrderRecord{}, err
	}

	// Заказ зафиксирован — корзину можно опустошать.
	f.cart.Clear()

	f.logger.WithField("order_id", record.ID).Info("checkout завершён")
	return record, nil
}
