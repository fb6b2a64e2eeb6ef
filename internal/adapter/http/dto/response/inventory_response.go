package response

import (
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type WithdrawalOrderResponse struct {
	OrderNumber         string    `json:"order_number"`
	Quantity            int64     `json:"quantity"`
	BeneficiaryFacility string    `json:"beneficiary_facility"`
	RecipientName       string    `json:"recipient_name"`
	RecipientContact    string    `json:"recipient_contact,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// ItemResponse carries both the stored ledger fields and the derived ones
// (unit value, item value, low stock) so screens never recompute them.
// Monetary amounts serialize as decimal strings.
type ItemResponse struct {
	ItemNumber       string                    `json:"item_number"`
	ItemName         string                    `json:"item_name"`
	ReceivedQty      int64                     `json:"received_qty"`
	IssuedQty        int64                     `json:"issued_qty"`
	AvailableQty     int64                     `json:"available_qty"`
	MinQuantity      int64                     `json:"min_quantity"`
	PurchaseValue    decimal.Decimal           `json:"purchase_value"`
	UnitValue        decimal.Decimal           `json:"unit_value"`
	ItemValue        decimal.Decimal           `json:"item_value"`
	IsLowStock       bool                      `json:"is_low_stock"`
	SupplierName     string                    `json:"supplier_name,omitempty"`
	WithdrawalOrders []WithdrawalOrderResponse `json:"withdrawal_orders"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
}

func FromWithdrawalOrder(o entities.WithdrawalOrder) WithdrawalOrderResponse {
	return WithdrawalOrderResponse{
		OrderNumber:         o.OrderNumber,
		Quantity:            o.Quantity,
		BeneficiaryFacility: o.BeneficiaryFacility,
		RecipientName:       o.RecipientName,
		RecipientContact:    o.RecipientContact,
		Status:              string(o.Status),
		CreatedAt:           o.CreatedAt,
	}
}

func FromItem(i entities.InventoryItem) ItemResponse {
	orders := make([]WithdrawalOrderResponse, 0, len(i.WithdrawalOrders))
	for _, o := range i.WithdrawalOrders {
		orders = append(orders, FromWithdrawalOrder(o))
	}
	return ItemResponse{
		ItemNumber:       i.ItemNumber,
		ItemName:         i.ItemName,
		ReceivedQty:      i.ReceivedQty,
		IssuedQty:        i.IssuedQty,
		AvailableQty:     i.AvailableQty,
		MinQuantity:      i.MinQuantity,
		PurchaseValue:    i.PurchaseValue,
		UnitValue:        i.UnitValue(),
		ItemValue:        i.ItemValue(),
		IsLowStock:       i.IsLowStock(),
		SupplierName:     i.SupplierName,
		WithdrawalOrders: orders,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func FromItems(items []entities.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}
