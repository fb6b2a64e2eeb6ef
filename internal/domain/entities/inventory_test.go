package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAvailableQuantity(t *testing.T) {
	cases := []struct {
		name     string
		received int64
		issued   int64
		want     int64
	}{
		{"normal balance", 100, 20, 80},
		{"exhausted", 50, 50, 0},
		{"over-issued clamps to zero", 30, 45, 0},
		{"nothing received", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AvailableQuantity(tc.received, tc.issued); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestInventoryItem_Recompute(t *testing.T) {
	item := InventoryItem{ReceivedQty: 100, IssuedQty: 30, AvailableQty: 999}
	item.Recompute()
	if item.AvailableQty != 70 {
		t.Fatalf("expected 70, got %d", item.AvailableQty)
	}
}

func TestInventoryItem_Valuation(t *testing.T) {
	t.Run("unit and item value", func(t *testing.T) {
		item := InventoryItem{
			ReceivedQty:   10,
			IssuedQty:     6,
			PurchaseValue: decimal.NewFromInt(1000),
		}
		item.Recompute()

		if !item.UnitValue().Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected unit value 100, got %s", item.UnitValue())
		}
		if !item.ItemValue().Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected item value 400, got %s", item.ItemValue())
		}
	})

	t.Run("zero received prices at full value", func(t *testing.T) {
		item := InventoryItem{PurchaseValue: decimal.NewFromInt(250)}
		if !item.UnitValue().Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected 250, got %s", item.UnitValue())
		}
	})

	t.Run("fractional unit value", func(t *testing.T) {
		item := InventoryItem{ReceivedQty: 3, PurchaseValue: decimal.NewFromInt(100)}
		want := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
		if !item.UnitValue().Equal(want) {
			t.Fatalf("expected %s, got %s", want, item.UnitValue())
		}
	})
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	cases := []struct {
		name      string
		available int64
		min       int64
		want      bool
	}{
		{"above minimum", 10, 5, false},
		{"at minimum counts as low", 5, 5, true},
		{"below minimum", 2, 5, true},
		{"zero minimum zero stock", 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := InventoryItem{AvailableQty: tc.available, MinQuantity: tc.min}
			if got := item.IsLowStock(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTotalInventoryValue(t *testing.T) {
	items := []InventoryItem{
		{ReceivedQty: 10, AvailableQty: 4, PurchaseValue: decimal.NewFromInt(1000)},
		{ReceivedQty: 5, AvailableQty: 5, PurchaseValue: decimal.NewFromInt(50)},
	}

	// 4*100 + 5*10
	if got := TotalInventoryValue(items); !got.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected 450, got %s", got)
	}

	if got := TotalInventoryValue(nil); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero, got %s", got)
	}
}
