package render

import (
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

// FormatMinor печатает сумму в минимальных единицах как цену в песо: ₱149.99.
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s₱%d.%02d", sign, minor/100, minor%100)
}

// CartView строит текстовое представление корзины: позиции с ценой за единицу
// и промежуточной суммой, итог и счётчик единиц. Для пустой корзины выводится
// сообщение и скрывается подсказка про checkout.
func CartView(snapshot []domain.CartLineItem) string {
	var b strings.Builder

	if len(snapshot) == 0 {
		b.WriteString("Your cart is empty.\n")
		b.WriteString("Cart items: 0\n")
		return b.String()
	}

	for _, li := range snapshot {
		fmt.Fprintf(&b, "%s — %s x %d — Subtotal: %s\n",
			li.Name, FormatMinor(li.PriceMinor), li.Quantity, FormatMinor(li.Subtotal()))
	}
	fmt.Fprintf(&b, "Total: %s\n", FormatMinor(domain.TotalMinor(snapshot)))
	fmt.Fprintf(&b, "Cart items: %d\n", domain.CountItems(snapshot))
	b.WriteString("Type 'checkout' to place your order.\n")

	return b.String()
}

// OrderView строит карточку найденного заказа в духе блока trackOrder
// исходного виджета.
func OrderView(record domain.OrderRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order ID: %s\n", record.ID)
	fmt.Fprintf(&b, "Status: %s\n", record.Status)
	fmt.Fprintf(&b, "Customer: %s\n", record.CustomerName)
	fmt.Fprintf(&b, "Address: %s\n", record.Address)
	fmt.Fprintf(&b, "Payment: %s\n", record.PaymentMethod)
	fmt.Fprintf(&b, "Date: %s\n", record.PlacedDate)
	fmt.Fprintf(&b, "Total: %s\n", FormatMinor(record.TotalMinor))
	b.WriteString("Items:\n")
	for _, li := range record.Items {
		fmt.Fprintf(&b, "  - %s x %d (%s)\n", li.Name, li.Quantity, FormatMinor(li.Subtotal()))
	}

	return b.String()
}

// OrderNotFound строит сообщение о промахе поиска заказа.
func OrderNotFound(id string) string {
	return fmt.Sprintf("Order ID %s not found. Please double-check the ID.\n", id)
}

// ThankYou строит сообщение об успешном оформлении заказа.
func ThankYou(record domain.OrderRecord) string {
	return fmt.Sprintf("Thank you for your order!\nYour order ID is %s. Keep it to track your order.\n", record.ID)
}
