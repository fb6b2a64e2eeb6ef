package interfaces

import (
	"context"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// IFacilityRepository abstracts persistence for facility records. Facilities
// are maintained by the administration collaborators; this service only needs
// enough surface to register them and feed the dashboard aggregation.

type IFacilityRepository interface {
	Create(ctx context.Context, f entities.Facility) (entities.Facility, error)
	GetByID(ctx context.Context, id string) (entities.Facility, error)
	List(ctx context.Context) ([]entities.Facility, error)
	Delete(ctx context.Context, id string) (bool, error)
}
