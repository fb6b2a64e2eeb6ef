package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus tracks a warehouse withdrawal order.

type WithdrawalStatus string

const (
	WithdrawalStatusOpen      WithdrawalStatus = "open"
	WithdrawalStatusFulfilled WithdrawalStatus = "fulfilled"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// WithdrawalOrder is a stock reservation against one inventory item. Orders
// are owned by their item: deleting the item discards them.
type WithdrawalOrder struct {
	OrderNumber         string           `json:"order_number"`
	Quantity            int64            `json:"quantity"`
	BeneficiaryFacility string           `json:"beneficiary_facility"`
	RecipientName       string           `json:"recipient_name"`
	RecipientContact    string           `json:"recipient_contact,omitempty"`
	Status              WithdrawalStatus `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
}

// InventoryItem is the stock-accounting state of one warehouse item.
//
// Storage model (DynamoDB):
//   - PK: item_number
//
// AvailableQty is derived, never independently settable: it is recomputed from
// received/issued after every mutation so the clamp invariant cannot drift.
type InventoryItem struct {
	ItemNumber       string            `json:"item_number"`
	ItemName         string            `json:"item_name"`
	ReceivedQty      int64             `json:"received_qty"`
	IssuedQty        int64             `json:"issued_qty"`
	AvailableQty     int64             `json:"available_qty"`
	MinQuantity      int64             `json:"min_quantity"`
	PurchaseValue    decimal.Decimal   `json:"purchase_value"`
	SupplierName     string            `json:"supplier_name,omitempty"`
	WithdrawalOrders []WithdrawalOrder `json:"withdrawal_orders"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// AvailableQuantity clamps received-issued at zero. Negative balances come
// from data entry done before the item was tracked here; the clamp keeps the
// ledger usable (strict mode in the use case refuses them instead).
func AvailableQuantity(received, issued int64) int64 {
	if available := received - issued; available > 0 {
		return available
	}
	return 0
}

// Recompute refreshes the derived available quantity.
func (i *InventoryItem) Recompute() {
	i.AvailableQty = AvailableQuantity(i.ReceivedQty, i.IssuedQty)
}

// UnitValue is the purchase value of a single unit. A received quantity of
// zero is treated as one for this computation only, so legacy rows with a
// value but no recorded receipt still price at the full purchase value.
func (i InventoryItem) UnitValue() decimal.Decimal {
	divisor := i.ReceivedQty
	if divisor == 0 {
		divisor = 1
	}
	return i.PurchaseValue.Div(decimal.NewFromInt(divisor))
}

// ItemValue is the monetary value of the stock still available.
func (i InventoryItem) ItemValue() decimal.Decimal {
	return i.UnitValue().Mul(decimal.NewFromInt(i.AvailableQty))
}

// IsLowStock reports whether the item is at or below its minimum quantity.
// The boundary itself counts as low.
func (i InventoryItem) IsLowStock() bool {
	return i.AvailableQty <= i.MinQuantity
}

// TotalInventoryValue sums the item values of the given items.
func TotalInventoryValue(items []InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.ItemValue())
	}
	return total
}
