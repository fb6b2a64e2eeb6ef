package response

import (
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
)

type StatusEventResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	Actor     string    `json:"actor,omitempty"`
}

type EntityResponse struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	CurrentStatus string                `json:"current_status"`
	History       []StatusEventResponse `json:"history"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// PresentationResponse is the full render payload for one entity: status,
// audit trail, the fixed-name audit fields, elapsed text and overdue days.
// NamedAuditFields keys pass through verbatim; print templates match on them.
type PresentationResponse struct {
	ID               string                `json:"id"`
	Kind             string                `json:"kind"`
	CurrentStatus    string                `json:"current_status"`
	History          []StatusEventResponse `json:"history"`
	NamedAuditFields map[string]string     `json:"named_audit_fields"`
	ElapsedText      string                `json:"elapsed_text"`
	OverdueDays      *int                  `json:"overdue_days,omitempty"`
	AllowedNext      []string              `json:"allowed_next"`
}

func fromHistory(history []entities.StatusEvent) []StatusEventResponse {
	out := make([]StatusEventResponse, 0, len(history))
	for _, ev := range history {
		out = append(out, StatusEventResponse{
			Status:    string(ev.Status),
			Timestamp: ev.Timestamp,
			Note:      ev.Note,
			Actor:     ev.Actor,
		})
	}
	return out
}

func FromEntity(e entities.LifecycleEntity) EntityResponse {
	return EntityResponse{
		ID:            e.ID,
		Kind:          string(e.Kind),
		CurrentStatus: string(e.CurrentStatus),
		History:       fromHistory(e.History),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromEntities(list []entities.LifecycleEntity) []EntityResponse {
	out := make([]EntityResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEntity(e))
	}
	return out
}

func FromPresentation(v usecase.PresentationView) PresentationResponse {
	allowed := make([]string, 0, len(v.AllowedNext))
	for _, s := range v.AllowedNext {
		allowed = append(allowed, string(s))
	}
	return PresentationResponse{
		ID:               v.ID,
		Kind:             string(v.Kind),
		CurrentStatus:    string(v.CurrentStatus),
		History:          fromHistory(v.History),
		NamedAuditFields: v.NamedAuditFields,
		ElapsedText:      v.ElapsedText,
		OverdueDays:      v.OverdueDays,
		AllowedNext:      allowed,
	}
}
