package request

import (
	"errors"
	"strings"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPurchaseValue = errors.New("invalid purchase value")

// AddItemRequest registers a warehouse item. The purchase value arrives as a
// string so money never rides through a float.
type AddItemRequest struct {
	ItemNumber    string `json:"item_number" binding:"required"`
	ItemName      string `json:"item_name" binding:"required"`
	ReceivedQty   int64  `json:"received_qty"`
	IssuedQty     int64  `json:"issued_qty"`
	MinQuantity   int64  `json:"min_quantity"`
	PurchaseValue string `json:"purchase_value"`
	SupplierName  string `json:"supplier_name"`
}

func (r AddItemRequest) ResolvePurchaseValue() (decimal.Decimal, error) {
	return resolveDecimal(r.PurchaseValue)
}

// WithdrawRequest asks to withdraw stock for a beneficiary facility.
type WithdrawRequest struct {
	Quantity            int64  `json:"quantity" binding:"required"`
	BeneficiaryFacility string `json:"beneficiary_facility" binding:"required"`
	RecipientName       string `json:"recipient_name" binding:"required"`
	RecipientContact    string `json:"recipient_contact"`
}

// UpdateItemRequest patches an item; absent fields stay unchanged.
type UpdateItemRequest struct {
	ItemName      *string `json:"item_name"`
	ReceivedQty   *int64  `json:"received_qty"`
	IssuedQty     *int64  `json:"issued_qty"`
	MinQuantity   *int64  `json:"min_quantity"`
	PurchaseValue *string `json:"purchase_value"`
	SupplierName  *string `json:"supplier_name"`
}

func (r UpdateItemRequest) ResolvePurchaseValue() (*decimal.Decimal, error) {
	if r.PurchaseValue == nil {
		return nil, nil
	}
	v, err := resolveDecimal(*r.PurchaseValue)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ResolveWithdrawalRequest closes an open withdrawal order.
type ResolveWithdrawalRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ResolveWithdrawalRequest) ResolveStatus() entities.WithdrawalStatus {
	return entities.WithdrawalStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

func resolveDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidPurchaseValue
	}
	return v, nil
}
