package request

import (
	"strings"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// CreateEntityRequest opens a new lifecycle record of any kind.
type CreateEntityRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Note  string `json:"note"`
	Actor string `json:"actor"`
}

func (r CreateEntityRequest) ResolveKind() entities.EntityKind {
	return entities.EntityKind(strings.TrimSpace(strings.ToLower(r.Kind)))
}

// TransitionRequest asks for one status transition. Validation against the
// kind's policy happens in the use case, not here.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
	Actor  string `json:"actor"`
}

func (r TransitionRequest) ResolveStatus() entities.Status {
	return entities.Status(strings.TrimSpace(strings.ToLower(r.Status)))
}
