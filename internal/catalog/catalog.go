package catalog

import "strings"

// Product — карточка товара на витрине.
type Product struct {
	Name       string
	Category   string
	PriceMinor int64
}

// CategoryAll — псевдокатегория "показать всё".
const CategoryAll = "all"

// Catalog — неизменяемый список товаров витрины с фильтрацией по категории
// и поисковой строке.
type Catalog struct {
	products []Product
}

// New создаёт каталог из переданного списка товаров.
func New(products []Product) *Catalog {
	out := make([]Product, len(products))
	copy(out, products)
	return &Catalog{products: out}
}

// Default возвращает витрину кондитерской Une Claire.
func Default() *Catalog {
	return New([]Product{
		{Name: "Éclair Classique", Category: "eclairs", PriceMinor: 14999},
		{Name: "Éclair au Chocolat", Category: "eclairs", PriceMinor: 15999},
		{Name: "Éclair Café", Category: "eclairs", PriceMinor: 15499},
		{Name: "Croissant au Beurre", Category: "pastries", PriceMinor: 8500},
		{Name: "Pain au Chocolat", Category: "pastries", PriceMinor: 9500},
		{Name: "Mille-Feuille", Category: "cakes", PriceMinor: 18999},
		{Name: "Fraisier", Category: "cakes", PriceMinor: 24999},
		{Name: "Macaron Box (6)", Category: "macarons", PriceMinor: 29999},
	})
}

// All возвращает копию полного списка товаров.
func (c *Catalog) All() []Product {
	return c.Filter(CategoryAll, "")
}

// Filter повторяет filterProducts исходного виджета: товар виден, если
// совпадает категория (или выбрана "all") и имя содержит поисковую строку
// без учёта регистра.
func (c *Catalog) Filter(category, searchTerm string) []Product {
	searchTerm = strings.ToLower(strings.TrimSpace(searchTerm))

	var out []Product
	for _, p := range c.products {
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(p.Name), searchTerm) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Find ищет товар по точному имени без учёта регистра.
func (c *Catalog) Find(name string) (Product, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.products {
		if strings.ToLower(p.Name) == name {
			return p, true
		}
	}
	return Product{}, false
}

// Categories возвращает список категорий в порядке первого появления.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
