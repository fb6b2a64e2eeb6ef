package request

import (
	"strings"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// CreateFacilityRequest registers a facility record supplied by the
// administration tooling.
type CreateFacilityRequest struct {
	ID                string `json:"id"`
	Name              string `json:"name" binding:"required"`
	Sector            string `json:"sector" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Status            string `json:"status" binding:"required"`
	TotalClinics      int    `json:"total_clinics"`
	WorkingClinics    int    `json:"working_clinics"`
	OutOfOrderClinics int    `json:"out_of_order_clinics"`
	NotWorkingClinics int    `json:"not_working_clinics"`
}

func (r CreateFacilityRequest) ToFacility() entities.Facility {
	return entities.Facility{
		ID:                strings.TrimSpace(r.ID),
		Name:              r.Name,
		Sector:            r.Sector,
		Category:          r.Category,
		Status:            entities.FacilityStatus(strings.TrimSpace(strings.ToLower(r.Status))),
		TotalClinics:      r.TotalClinics,
		WorkingClinics:    r.WorkingClinics,
		OutOfOrderClinics: r.OutOfOrderClinics,
		NotWorkingClinics: r.NotWorkingClinics,
	}
}
