package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewStoreMetrics_AllCollectorsPresent(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewStoreMetricsWithRegisterer(registry)

	if m == nil {
		t.Fatal("NewStoreMetricsWithRegisterer should not return nil")
	}
	if m.cartAdds == nil {
		t.Error("cartAdds counter should not be nil")
	}
	if m.cartRemovals == nil {
		t.Error("cartRemovals counter should not be nil")
	}
	if m.cartClears == nil {
		t.Error("cartClears counter should not be nil")
	}
	if m.ordersPlaced == nil {
		t.Error("ordersPlaced counter should not be nil")
	}
	if m.orderLookups == nil {
		t.Error("orderLookups counter vec should not be nil")
	}
	if m.cartItems == nil {
		t.Error("cartItems gauge should not be nil")
	}
	if m.checkoutTotal == nil {
		t.Error("checkoutTotal histogram should not be nil")
	}
}

func TestStoreMetrics_Recording(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewStoreMetricsWithRegisterer(registry)

	m.RecordCartAdd()
	m.RecordCartAdd()
	m.RecordCartRemoval()
	m.SetCartItems(3)
	m.RecordOrderPlaced(29998)
	m.RecordOrderLookup(true)
	m.RecordOrderLookup(false)

	if got := counterValue(t, registry, "uneclaire_cart_adds_total", nil); got != 2 {
		t.Fatalf("expected 2 cart adds, got %v", got)
	}
	if got := counterValue(t, registry, "uneclaire_cart_removals_total", nil); got != 1 {
		t.Fatalf("expected 1 removal, got %v", got)
	}
	if got := counterValue(t, registry, "uneclaire_order_lookups_total", map[string]string{"result": "not_found"}); got != 1 {
		t.Fatalf("expected 1 not_found lookup, got %v", got)
	}
}

func TestStoreMetrics_NilReceiverSafe(t *testing.T) {
	// Метрики опциональны: nil-получатель не должен паниковать.
	var m *StoreMetrics
	m.RecordCartAdd()
	m.RecordCartRemoval()
	m.RecordCartClear()
	m.SetCartItems(1)
	m.RecordOrderPlaced(100)
	m.RecordOrderLookup(false)
}

// counterValue достаёт значение счётчика из собранного registry.
func counterValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	next:
		for _, metric := range family.GetMetric() {
			for k, v := range labels {
				if !hasLabel(metric, k, v) {
					continue next
				}
			}
			return metric.GetCounter().GetValue()
		}
	}

	t.Fatalf("metric %s with labels %v not found", name, labels)
	return 0
}

func hasLabel(metric *dto.Metric, key, value string) bool {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == key && pair.GetValue() == value {
			return true
		}
	}
	return false
}
