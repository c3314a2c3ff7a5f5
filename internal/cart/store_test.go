package cart_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/cart"
	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger.WithField("component", "test")
}

func newStore() (*cart.Store, domain.StateStore) {
	state := memory.NewStateStore()
	return cart.NewStore(state, nil, loggerForTests()), state
}

func TestAdd_SameNameMergesQuantity(t *testing.T) {
	store, _ := newStore()

	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	snapshot := store.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("expected one line item, got %d", len(snapshot))
	}
	if snapshot[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snapshot[0].Quantity)
	}
	if store.TotalMinor() != 2000 {
		t.Fatalf("expected total 2000 minor, got %d", store.TotalMinor())
	}
}

func TestAdd_FirstPriceWins(t *testing.T) {
	store, _ := newStore()

	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// Повторное добавление с другой ценой не меняет сохранённую цену.
	if err := store.Add("A", "99.99"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	snapshot := store.Snapshot()
	if snapshot[0].PriceMinor != 1000 {
		t.Fatalf("expected first price to win (1000), got %d", snapshot[0].PriceMinor)
	}
}

func TestAdd_InvalidInputRejected(t *testing.T) {
	store, _ := newStore()

	if err := store.Add("A", "not-a-price"); !errors.Is(err, domain.ErrPriceInvalid) {
		t.Fatalf("expected ErrPriceInvalid, got %v", err)
	}
	if err := store.Add("A", "-5"); !errors.Is(err, domain.ErrPriceInvalid) {
		t.Fatalf("expected ErrPriceInvalid for negative price, got %v", err)
	}
	if err := store.Add("  ", "10"); !errors.Is(err, domain.ErrItemNameRequired) {
		t.Fatalf("expected ErrItemNameRequired, got %v", err)
	}
	if !store.IsEmpty() {
		t.Fatal("rejected adds must not mutate the cart")
	}
}

func TestSetQuantity(t *testing.T) {
	store, _ := newStore()
	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	store.SetQuantity("A", "5")
	if got := store.ItemCount(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	if got := store.TotalMinor(); got != 5000 {
		t.Fatalf("expected total 5000, got %d", got)
	}

	// Нечисловой ввод — no-op.
	store.SetQuantity("A", "abc")
	if got := store.ItemCount(); got != 5 {
		t.Fatalf("non-numeric edit must be ignored, got count %d", got)
	}

	// Нулевое количество удаляет позицию.
	store.SetQuantity("A", "0")
	if !store.IsEmpty() {
		t.Fatal("expected empty cart after setting quantity to zero")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	store, _ := newStore()
	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	store.Remove("missing")
	if store.ItemCount() != 1 {
		t.Fatal("removing a missing item must leave the cart unchanged")
	}

	store.Remove("A")
	store.Remove("A")
	if !store.IsEmpty() {
		t.Fatal("expected empty cart after remove")
	}
}

func TestClearAndEmptyTotals(t *testing.T) {
	store, _ := newStore()
	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Add("B", "2.50"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	store.Clear()

	if !store.IsEmpty() {
		t.Fatal("expected empty cart after clear")
	}
	if store.TotalMinor() != 0 {
		t.Fatalf("expected total 0, got %d", store.TotalMinor())
	}
	if store.ItemCount() != 0 {
		t.Fatalf("expected count 0, got %d", store.ItemCount())
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	state := memory.NewStateStore()
	original := cart.NewStore(state, nil, loggerForTests())

	if err := original.Add("Éclair Classique", "149.99"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := original.Add("Croissant au Beurre", "85"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	original.SetQuantity("Croissant au Beurre", "3")

	// Новая сессия поверх того же слота.
	restored := cart.NewStore(state, nil, loggerForTests())
	restored.Restore()

	want := original.Snapshot()
	got := restored.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
	if restored.TotalMinor() != original.TotalMinor() {
		t.Fatalf("total mismatch after restore: %d vs %d", restored.TotalMinor(), original.TotalMinor())
	}
}

func TestRestore_MalformedStateYieldsEmptyCart(t *testing.T) {
	state := memory.NewStateStore()
	if err := state.Save([]byte(`{broken json`)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := cart.NewStore(state, nil, loggerForTests())
	store.Restore()

	if !store.IsEmpty() {
		t.Fatal("malformed state must restore as an empty cart")
	}
}

func TestRestore_DropsInvalidItems(t *testing.T) {
	state := memory.NewStateStore()
	payload := `[{"name":"A","price":100,"quantity":1},{"name":"","price":-5,"quantity":0}]`
	if err := state.Save([]byte(payload)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := cart.NewStore(state, nil, loggerForTests())
	store.Restore()

	if got := len(store.Snapshot()); got != 1 {
		t.Fatalf("expected only the valid item to survive, got %d", got)
	}
}

func TestMutationsPersistToSlot(t *testing.T) {
	store, state := newStore()

	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	payload, err := state.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(payload) != `[{"name":"A","price":1000,"quantity":1}]` {
		t.Fatalf("unexpected persisted payload: %s", payload)
	}

	store.Clear()
	payload, err = state.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(payload) != `[]` {
		t.Fatalf("expected empty list after clear, got %s", payload)
	}
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	store, _ := newStore()

	var calls int
	var last []domain.CartLineItem
	store.Subscribe(func(snapshot []domain.CartLineItem) {
		calls++
		last = snapshot
	})

	if err := store.Add("A", "10"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	store.SetQuantity("A", "2")
	store.Remove("A")

	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
	if len(last) != 0 {
		t.Fatalf("expected final snapshot to be empty, got %+v", last)
	}
}
