package domain

import (
	"math"
	"strconv"
)

// CartLineItem представляет одну позицию корзины.
// Name служит естественным ключом: в корзине не может быть двух позиций
// с одинаковым именем.
type CartLineItem struct {
	// Name — отображаемое имя товара и одновременно ключ позиции.
	Name string `json:"name"`
	// PriceMinor — цена за единицу в минимальных денежных единицах (сентаво).
	PriceMinor int64 `json:"price"`
	// Quantity — количество единиц; всегда >= 1, позиция с нулём удаляется.
	Quantity int `json:"quantity"`
}

// Subtotal возвращает стоимость позиции (цена * количество) в минимальных единицах.
func (li CartLineItem) Subtotal() int64 {
	return li.PriceMinor * int64(li.Quantity)
}

// ValidateInvariants проверяет базовые инварианты позиции и возвращает список замечаний.
func (li CartLineItem) ValidateInvariants() []error {
	var errs []error

	if li.Name == "" {
		errs = append(errs, ErrItemNameRequired)
	}
	if li.PriceMinor < 0 {
		errs = append(errs, ErrPriceInvalid)
	}
	if li.Quantity < 1 {
		errs = append(errs, ErrQuantityInvalid)
	}

	return errs
}

// CloneLineItems возвращает независимую копию списка позиций.
// Позиции не содержат ссылочных полей, поэтому копии слайса достаточно.
func CloneLineItems(items []CartLineItem) []CartLineItem {
	if items == nil {
		return nil
	}
	out := make([]CartLineItem, len(items))
	copy(out, items)
	return out
}

// TotalMinor считает сумму по списку позиций в минимальных единицах.
func TotalMinor(items []CartLineItem) int64 {
	var total int64
	for _, li := range items {
		total += li.Subtotal()
	}
	return total
}

// CountItems считает суммарное количество единиц по всем позициям.
func CountItems(items []CartLineItem) int {
	var count int
	for _, li := range items {
		count += li.Quantity
	}
	return count
}

// ParsePriceMinor разбирает пользовательский ввод цены ("149.99") в минимальные
// единицы. NaN, бесконечности, отрицательные и нечисловые значения отклоняются
// с ErrPriceInvalid: молча сохранять испорченную цену нельзя.
func ParsePriceMinor(raw string) (int64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrPriceInvalid
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, ErrPriceInvalid
	}
	// Слишком большая цена переполнила бы int64 и стала бы отрицательной.
	if f > float64(math.MaxInt64)/100 {
		return 0, ErrPriceInvalid
	}
	return int64(math.Round(f * 100)), nil
}
