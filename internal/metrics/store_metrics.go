package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics содержит метрики витрины: операции с корзиной и заказы.
type StoreMetrics struct {
	// Счётчики операций с корзиной
	cartAdds     prometheus.Counter
	cartRemovals prometheus.Counter
	cartClears   prometheus.Counter

	// Счётчики заказов
	ordersPlaced prometheus.Counter
	orderLookups *prometheus.CounterVec

	// Gauge текущего наполнения корзины
	cartItems prometheus.Gauge

	// Гистограмма сумм оформленных заказов (в песо)
	checkoutTotal prometheus.Histogram
}

// NewStoreMetrics создаёт метрики витрины в default-регистраторе.
func NewStoreMetrics() *StoreMetrics {
	return NewStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewStoreMetricsWithRegisterer создаёт метрики в указанном регистраторе;
// в тестах сюда передаётся изолированный prometheus.NewRegistry().
func NewStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		cartAdds: registerCounter(registerer, prometheus.CounterOpts{
			Name: "uneclaire_cart_adds_total",
			Help: "Total number of add-to-cart operations",
		}),
		cartRemovals: registerCounter(registerer, prometheus.CounterOpts{
			Name: "uneclaire_cart_removals_total",
			Help: "Total number of cart line removals",
		}),
		cartClears: registerCounter(registerer, prometheus.CounterOpts{
			Name: "uneclaire_cart_clears_total",
			Help: "Total number of full cart clears",
		}),
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "uneclaire_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		orderLookups: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "uneclaire_order_lookups_total",
			Help: "Total number of order lookups grouped by result",
		}, []string{"result"}),
		cartItems: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "uneclaire_cart_items",
			Help: "Current number of units in the cart",
		}),
		checkoutTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "uneclaire_checkout_total_pesos",
			Help:    "Totals of placed orders in pesos",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
	}
}

// RecordCartAdd фиксирует добавление товара в корзину.
func (m *StoreMetrics) RecordCartAdd() {
	if m == nil {
		return
	}
	m.cartAdds.Inc()
}

// RecordCartRemoval фиксирует удаление позиции из корзины.
func (m *StoreMetrics) RecordCartRemoval() {
	if m == nil {
		return
	}
	m.cartRemovals.Inc()
}

// RecordCartClear фиксирует полную очистку корзины.
func (m *StoreMetrics) RecordCartClear() {
	if m == nil {
		return
	}
	m.cartClears.Inc()
}

// SetCartItems обновляет gauge текущего количества единиц в корзине.
func (m *StoreMetrics) SetCartItems(count int) {
	if m == nil {
		return
	}
	m.cartItems.Set(float64(count))
}

// RecordOrderPlaced фиксирует оформленный заказ и его сумму в песо.
func (m *StoreMetrics) RecordOrderPlaced(totalMinor int64) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.checkoutTotal.Observe(float64(totalMinor) / 100)
}

// RecordOrderLookup фиксирует поиск заказа; found определяет метку result.
func (m *StoreMetrics) RecordOrderLookup(found bool) {
	if m == nil {
		return
	}
	result := "found"
	if !found {
		result = "not_found"
	}
	m.orderLookups.WithLabelValues(result).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
