package response

import (
	"testing"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromItem_DerivedFields(t *testing.T) {
	item := entities.InventoryItem{
		ItemNumber:    "itm-1",
		ItemName:      "gloves",
		ReceivedQty:   10,
		IssuedQty:     6,
		AvailableQty:  4,
		MinQuantity:   5,
		PurchaseValue: decimal.NewFromInt(1000),
		WithdrawalOrders: []entities.WithdrawalOrder{
			{OrderNumber: "ord-1", Quantity: 6, Status: entities.WithdrawalStatusOpen},
		},
	}

	res := FromItem(item)

	if !res.UnitValue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected unit value 100, got %s", res.UnitValue)
	}
	if !res.ItemValue.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected item value 400, got %s", res.ItemValue)
	}
	if !res.IsLowStock {
		t.Fatalf("expected low stock at 4 <= 5")
	}
	if len(res.WithdrawalOrders) != 1 || res.WithdrawalOrders[0].Status != "open" {
		t.Fatalf("unexpected orders: %+v", res.WithdrawalOrders)
	}
}

func TestFromItems_EmptyIsNotNil(t *testing.T) {
	if res := FromItems(nil); res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %v", res)
	}
}
