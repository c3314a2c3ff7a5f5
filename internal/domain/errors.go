package domain

import "errors"

var (
	// Ошибка пустого имени позиции.
	ErrItemNameRequired = errors.New("item name is required")
	// Ошибка некорректной цены: не число, отрицательная или бесконечная.
	ErrPriceInvalid = errors.New("price must be a non-negative number")
	// Ошибка некорректного количества (< 1) в уже сохранённой позиции.
	ErrQuantityInvalid = errors.New("item quantity must be at least one")
	// Ошибка оформления заказа с пустой корзиной.
	ErrCartEmpty = errors.New("cart is empty")
	// Ошибка отсутствующего имени покупателя при оформлении.
	ErrCustomerRequired = errors.New("customer name is required")
	// Ошибка отсутствующего адреса доставки при оформлении.
	ErrAddressRequired = errors.New("delivery address is required")
	// Ошибка отсутствующего способа оплаты при оформлении.
	ErrPaymentMethodRequired = errors.New("payment method is required")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка идентификатора, не соответствующего шаблону ORDnnnnn.
	ErrOrderIDInvalid = errors.New("order id must match ORD followed by five digits")
	// Ошибка заполнения контактной формы: все поля обязательны.
	ErrContactFieldsRequired = errors.New("contact form requires name, email and message")
	// Ошибка недоступного хранилища состояния.
	ErrStateUnavailable = errors.New("state store is unavailable")
	// ErrSendInProgress возвращается, если контактная форма уже отправляется.
	ErrSendInProgress = errors.New("contact form send already in progress")
)

// IsValidationFailure проверяет, относится ли ошибка к пользовательским
// ошибкам валидации: такие ошибки показываются немедленно и не меняют состояние.
func IsValidationFailure(err error) bool {
	for _, v := range []error{
		ErrItemNameRequired,
		ErrPriceInvalid,
		ErrCartEmpty,
		ErrCustomerRequired,
		ErrAddressRequired,
		ErrPaymentMethodRequired,
		ErrContactFieldsRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
