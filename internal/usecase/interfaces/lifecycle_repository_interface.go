package interfaces

import (
	"context"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// ILifecycleRepository abstracts persistence for lifecycle entities.
//
// Conventions (shared by every repository here):
//   - "not found" reads return a zero-value entity and a nil error; callers
//     check the ID.
//   - AppendEvent must be conditional on the stored current status matching
//     expected, so two transitions cannot race past validation. A failed
//     condition returns a zero-value entity.

type ILifecycleRepository interface {
	Create(ctx context.Context, e entities.LifecycleEntity) (entities.LifecycleEntity, error)
	GetByID(ctx context.Context, id string) (entities.LifecycleEntity, error)
	ListByKind(ctx context.Context, kind entities.EntityKind) ([]entities.LifecycleEntity, error)
	AppendEvent(ctx context.Context, id string, expected entities.Status, ev entities.StatusEvent) (entities.LifecycleEntity, error)
	Delete(ctx context.Context, id string) (bool, error)
}
