package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrItemAlreadyExists  = errors.New("inventory item already exists")
	ErrInvalidItemNumber  = errors.New("invalid item number")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrWithdrawalNotFound = errors.New("withdrawal order not found")
	ErrWithdrawalNotOpen  = errors.New("withdrawal order is not open")
)

// AddItemInput carries a new inventory item. AvailableQty is derived and has
// no input field on purpose.
type AddItemInput struct {
	ItemNumber    string
	ItemName      string
	ReceivedQty   int64
	IssuedQty     int64
	MinQuantity   int64
	PurchaseValue decimal.Decimal
	SupplierName  string
}

// WithdrawInput carries one withdrawal request against an item.
type WithdrawInput struct {
	Quantity            int64
	BeneficiaryFacility string
	RecipientName       string
	RecipientContact    string
}

// UpdateItemInput patches an existing item; nil fields are left unchanged.
type UpdateItemInput struct {
	ItemName      *string
	ReceivedQty   *int64
	IssuedQty     *int64
	MinQuantity   *int64
	PurchaseValue *decimal.Decimal
	SupplierName  *string
}

// IInventoryUseCase is the warehouse ledger: stock arithmetic, valuation and
// withdrawal reservations.

type IInventoryUseCase interface {
	AddItem(ctx context.Context, in AddItemInput) (entities.InventoryItem, error)
	GetItem(ctx context.Context, itemNumber string) (entities.InventoryItem, error)
	ListItems(ctx context.Context) ([]entities.InventoryItem, error)
	UpdateItem(ctx context.Context, itemNumber string, in UpdateItemInput) (entities.InventoryItem, error)
	DeleteItem(ctx context.Context, itemNumber string) error
	Withdraw(ctx context.Context, itemNumber string, in WithdrawInput) (entities.WithdrawalOrder, error)
	ResolveWithdrawal(ctx context.Context, itemNumber, orderNumber string, resolution entities.WithdrawalStatus) (entities.InventoryItem, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	LowStockItems(ctx context.Context) ([]entities.InventoryItem, error)
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository

	// strictStock refuses issued > received instead of clamping the derived
	// available quantity to zero. The clamp is the historical behavior; the
	// strict mode surfaces the data-entry error to the caller.
	strictStock bool
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, strictStock bool) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, strictStock: strictStock}
}

func (u *InventoryUseCase) AddItem(ctx context.Context, in AddItemInput) (entities.InventoryItem, error) {
	in.ItemNumber = strings.TrimSpace(in.ItemNumber)
	in.ItemName = strings.TrimSpace(in.ItemName)

	var v validator
	v.requireNonEmpty("item_number", in.ItemNumber)
	v.requireNonEmpty("item_name", in.ItemName)
	v.requireNonNegative("received_qty", in.ReceivedQty)
	v.requireNonNegative("issued_qty", in.IssuedQty)
	v.requireNonNegative("min_quantity", in.MinQuantity)
	if in.PurchaseValue.IsNegative() {
		v.addf("purchase_value", "must not be negative")
	}
	if u.strictStock && in.IssuedQty > in.ReceivedQty {
		v.addf("issued_qty", "exceeds received quantity")
	}
	if err := v.err(); err != nil {
		return entities.InventoryItem{}, err
	}

	now := time.Now().UTC()
	item := entities.InventoryItem{
		ItemNumber:       in.ItemNumber,
		ItemName:         in.ItemName,
		ReceivedQty:      in.ReceivedQty,
		IssuedQty:        in.IssuedQty,
		MinQuantity:      in.MinQuantity,
		PurchaseValue:    in.PurchaseValue,
		SupplierName:     strings.TrimSpace(in.SupplierName),
		WithdrawalOrders: []entities.WithdrawalOrder{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	item.Recompute()

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if created.ItemNumber == "" {
		return entities.InventoryItem{}, ErrItemAlreadyExists
	}
	return created, nil
}

func (u *InventoryUseCase) GetItem(ctx context.Context, itemNumber string) (entities.InventoryItem, error) {
	itemNumber = strings.TrimSpace(itemNumber)
	if itemNumber == "" {
		return entities.InventoryItem{}, ErrInvalidItemNumber
	}

	item, err := u.repo.GetByItemNumber(ctx, itemNumber)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ItemNumber == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

func (u *InventoryUseCase) ListItems(ctx context.Context) ([]entities.InventoryItem, error) {
	return u.repo.List(ctx)
}

func (u *InventoryUseCase) UpdateItem(ctx context.Context, itemNumber string, in UpdateItemInput) (entities.InventoryItem, error) {
	item, err := u.GetItem(ctx, itemNumber)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	expectedUpdatedAt := item.UpdatedAt
	if in.ItemName != nil {
		item.ItemName = strings.TrimSpace(*in.ItemName)
	}
	if in.ReceivedQty != nil {
		item.ReceivedQty = *in.ReceivedQty
	}
	if in.IssuedQty != nil {
		item.IssuedQty = *in.IssuedQty
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.PurchaseValue != nil {
		item.PurchaseValue = *in.PurchaseValue
	}
	if in.SupplierName != nil {
		item.SupplierName = strings.TrimSpace(*in.SupplierName)
	}

	var v validator
	v.requireNonEmpty("item_name", item.ItemName)
	v.requireNonNegative("received_qty", item.ReceivedQty)
	v.requireNonNegative("issued_qty", item.IssuedQty)
	v.requireNonNegative("min_quantity", item.MinQuantity)
	if item.PurchaseValue.IsNegative() {
		v.addf("purchase_value", "must not be negative")
	}
	if u.strictStock && item.IssuedQty > item.ReceivedQty {
		v.addf("issued_qty", "exceeds received quantity")
	}
	if err := v.err(); err != nil {
		return entities.InventoryItem{}, err
	}

	item.Recompute()
	return u.saveWithConflictCheck(ctx, item, expectedUpdatedAt)
}

func (u *InventoryUseCase) DeleteItem(ctx context.Context, itemNumber string) error {
	itemNumber = strings.TrimSpace(itemNumber)
	if itemNumber == "" {
		return ErrInvalidItemNumber
	}

	// Withdrawal orders are owned by the item and disappear with it.
	deleted, err := u.repo.Delete(ctx, itemNumber)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func (u *InventoryUseCase) Withdraw(ctx context.Context, itemNumber string, in WithdrawInput) (entities.WithdrawalOrder, error) {
	itemNumber = strings.TrimSpace(itemNumber)
	if itemNumber == "" {
		return entities.WithdrawalOrder{}, ErrInvalidItemNumber
	}

	var v validator
	if in.Quantity <= 0 {
		v.addf("quantity", "must be positive")
	}
	v.requireNonEmpty("beneficiary_facility", in.BeneficiaryFacility)
	v.requireNonEmpty("recipient_name", in.RecipientName)
	if err := v.err(); err != nil {
		return entities.WithdrawalOrder{}, err
	}

	item, err := u.repo.GetByItemNumber(ctx, itemNumber)
	if err != nil {
		return entities.WithdrawalOrder{}, err
	}
	if item.ItemNumber == "" {
		return entities.WithdrawalOrder{}, ErrItemNotFound
	}
	if in.Quantity > item.AvailableQty {
		return entities.WithdrawalOrder{}, ErrInsufficientStock
	}

	order := entities.WithdrawalOrder{
		OrderNumber:         uuid.NewString(),
		Quantity:            in.Quantity,
		BeneficiaryFacility: strings.TrimSpace(in.BeneficiaryFacility),
		RecipientName:       strings.TrimSpace(in.RecipientName),
		RecipientContact:    strings.TrimSpace(in.RecipientContact),
		Status:              entities.WithdrawalStatusOpen,
		CreatedAt:           time.Now().UTC(),
	}

	// The stock check above is advisory; the storage write re-checks it
	// atomically so two concurrent withdrawals cannot both pass.
	updated, err := u.repo.ApplyWithdrawal(ctx, itemNumber, order)
	if err != nil {
		return entities.WithdrawalOrder{}, err
	}
	if updated.ItemNumber == "" {
		fresh, err := u.repo.GetByItemNumber(ctx, itemNumber)
		if err != nil {
			return entities.WithdrawalOrder{}, err
		}
		if fresh.ItemNumber == "" {
			return entities.WithdrawalOrder{}, ErrItemNotFound
		}
		if in.Quantity > fresh.AvailableQty {
			log.Printf("[inventory][usecase] withdrawal lost stock race item=%s qty=%d available=%d", itemNumber, in.Quantity, fresh.AvailableQty)
			return entities.WithdrawalOrder{}, ErrInsufficientStock
		}
		return entities.WithdrawalOrder{}, ErrStorageConflict
	}

	log.Printf("[inventory][usecase] withdrawal approved item=%s order=%s qty=%d available=%d", itemNumber, order.OrderNumber, order.Quantity, updated.AvailableQty)
	return order, nil
}

func (u *InventoryUseCase) ResolveWithdrawal(ctx context.Context, itemNumber, orderNumber string, resolution entities.WithdrawalStatus) (entities.InventoryItem, error) {
	if resolution != entities.WithdrawalStatusFulfilled && resolution != entities.WithdrawalStatusRejected {
		return entities.InventoryItem{}, &ValidationError{Fields: []FieldError{{Field: "status", Message: "must be fulfilled or rejected"}}}
	}

	item, err := u.GetItem(ctx, itemNumber)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	orderNumber = strings.TrimSpace(orderNumber)
	idx := -1
	for i, o := range item.WithdrawalOrders {
		if o.OrderNumber == orderNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.InventoryItem{}, ErrWithdrawalNotFound
	}
	if item.WithdrawalOrders[idx].Status != entities.WithdrawalStatusOpen {
		return entities.InventoryItem{}, ErrWithdrawalNotOpen
	}

	expectedUpdatedAt := item.UpdatedAt
	item.WithdrawalOrders[idx].Status = resolution
	if resolution == entities.WithdrawalStatusRejected {
		// A rejected withdrawal returns its reserved quantity to stock.
		item.IssuedQty -= item.WithdrawalOrders[idx].Quantity
		item.Recompute()
	}

	updated, err := u.saveWithConflictCheck(ctx, item, expectedUpdatedAt)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	log.Printf("[inventory][usecase] withdrawal resolved item=%s order=%s status=%s", item.ItemNumber, orderNumber, resolution)
	return updated, nil
}

func (u *InventoryUseCase) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return entities.TotalInventoryValue(items), nil
}

func (u *InventoryUseCase) LowStockItems(ctx context.Context) ([]entities.InventoryItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entities.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

func (u *InventoryUseCase) saveWithConflictCheck(ctx context.Context, item entities.InventoryItem, expectedUpdatedAt time.Time) (entities.InventoryItem, error) {
	updated, err := u.repo.Save(ctx, item, expectedUpdatedAt)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if updated.ItemNumber == "" {
		fresh, err := u.repo.GetByItemNumber(ctx, item.ItemNumber)
		if err != nil {
			return entities.InventoryItem{}, err
		}
		if fresh.ItemNumber == "" {
			return entities.InventoryItem{}, ErrItemNotFound
		}
		return entities.InventoryItem{}, ErrStorageConflict
	}
	return updated, nil
}
