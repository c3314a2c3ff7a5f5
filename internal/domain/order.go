package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// OrderStatus описывает жизненный цикл размещённого заказа.
type OrderStatus string

const (
	// OrderStatusProcessing — заказ принят и находится в обработке.
	// Каждый новый заказ получает именно этот статус.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "Delivered"
)

// OrderIDPrefix — фиксированный префикс идентификаторов заказов.
const OrderIDPrefix = "ORD"

// orderIDDigits — ширина числового суффикса идентификатора.
const orderIDDigits = 5

// OrderRecord — снимок заказа, зафиксированный в момент оформления.
// После размещения запись не изменяется: сумма и позиции — это снимок
// корзины на момент checkout, а не живое представление.
type OrderRecord struct {
	ID            string
	CustomerName  string
	Address       string
	Items         []CartLineItem
	TotalMinor    int64
	Status        OrderStatus
	PaymentMethod string
	PlacedDate    string
}

// ValidateInvariants проверяет согласованность записи заказа.
func (o *OrderRecord) ValidateInvariants() []error {
	var errs []error

	if _, err := ParseOrderID(o.ID); err != nil {
		errs = append(errs, err)
	}
	if o.CustomerName == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if o.Address == "" {
		errs = append(errs, ErrAddressRequired)
	}
	if o.PaymentMethod == "" {
		errs = append(errs, ErrPaymentMethodRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrCartEmpty)
	}
	for _, li := range o.Items {
		errs = append(errs, li.ValidateInvariants()...)
	}
	// Сверяем сумму заказа с суммой позиций.
	if o.TotalMinor != TotalMinor(o.Items) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}

// FormatOrderID собирает идентификатор вида ORD00001 из порядкового номера.
func FormatOrderID(n int) string {
	return fmt.Sprintf("%s%0*d", OrderIDPrefix, orderIDDigits, n)
}

// ParseOrderID извлекает числовой суффикс из идентификатора заказа.
// Возвращает ErrOrderIDInvalid, если строка не соответствует шаблону ORDnnnnn.
func ParseOrderID(id string) (int, error) {
	if !strings.HasPrefix(id, OrderIDPrefix) {
		return 0, ErrOrderIDInvalid
	}
	suffix := strings.TrimPrefix(id, OrderIDPrefix)
	if len(suffix) != orderIDDigits {
		return 0, ErrOrderIDInvalid
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0, ErrOrderIDInvalid
	}
	return n, nil
}

// NormalizeOrderID приводит пользовательский ввод идентификатора к канонической
// форме: пробелы по краям обрезаются, буквы переводятся в верхний регистр.
func NormalizeOrderID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
