package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

// helper для создания корректной записи заказа с одной позицией.
func makeOrder() domain.OrderRecord {
	return domain.OrderRecord{
		ID:            "ORD00001",
		CustomerName:  "Maria Santos",
		Address:       "12 Mabini St, Quezon City",
		Items:         []domain.CartLineItem{{Name: "Éclair Classique", PriceMinor: 14999, Quantity: 2}},
		TotalMinor:    29998,
		Status:        domain.OrderStatusProcessing,
		PaymentMethod: "Card",
		PlacedDate:    "5/12/2026",
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.OrderRecord)
	}{
		{name: "bad id", mut: func(o *domain.OrderRecord) { o.ID = "ORDER-1" }},
		{name: "no customer", mut: func(o *domain.OrderRecord) { o.CustomerName = "" }},
		{name: "no address", mut: func(o *domain.OrderRecord) { o.Address = "" }},
		{name: "no payment", mut: func(o *domain.OrderRecord) { o.PaymentMethod = "" }},
		{name: "no items", mut: func(o *domain.OrderRecord) { o.Items = nil; o.TotalMinor = 0 }},
		{name: "total mismatch", mut: func(o *domain.OrderRecord) { o.TotalMinor = 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)
			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestFormatParseOrderID(t *testing.T) {
	id := domain.FormatOrderID(7)
	if id != "ORD00007" {
		t.Fatalf("expected ORD00007, got %s", id)
	}

	n, err := domain.ParseOrderID(id)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
}

func TestParseOrderID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "ORD", "ORD123", "ORD12345678", "XYZ00001", "ORDabcde"} {
		if _, err := domain.ParseOrderID(raw); !errors.Is(err, domain.ErrOrderIDInvalid) {
			t.Fatalf("ParseOrderID(%q): expected ErrOrderIDInvalid, got %v", raw, err)
		}
	}
}

func TestNormalizeOrderID(t *testing.T) {
	if got := domain.NormalizeOrderID("  ord00001 "); got != "ORD00001" {
		t.Fatalf("expected ORD00001, got %q", got)
	}
}
