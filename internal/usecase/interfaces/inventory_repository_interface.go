package interfaces

import (
	"context"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// IInventoryRepository abstracts persistence for warehouse inventory items.
//
// ApplyWithdrawal is the one storage-level atomic operation of this core: it
// must issue the quantity, recompute the available balance, and append the
// withdrawal order in a single conditional write guarded by
// available_qty >= quantity. A failed guard returns a zero-value item.
//
// Save is a whole-item optimistic write conditional on the stored updated_at
// matching expectedUpdatedAt; a mismatch returns a zero-value item.
//
// Create is conditional on the item number being unused; a duplicate returns
// a zero-value item.

type IInventoryRepository interface {
	Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetByItemNumber(ctx context.Context, itemNumber string) (entities.InventoryItem, error)
	List(ctx context.Context) ([]entities.InventoryItem, error)
	ApplyWithdrawal(ctx context.Context, itemNumber string, order entities.WithdrawalOrder) (entities.InventoryItem, error)
	Save(ctx context.Context, item entities.InventoryItem, expectedUpdatedAt time.Time) (entities.InventoryItem, error)
	Delete(ctx context.Context, itemNumber string) (bool, error)
}
