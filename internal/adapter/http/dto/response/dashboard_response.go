package response

import (
	"github.com/RamziBenssaci/ren-sub000/internal/domain/aggregation"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
)

type FacilityResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Sector            string `json:"sector"`
	Category          string `json:"category"`
	Status            string `json:"status"`
	TotalClinics      int    `json:"total_clinics"`
	WorkingClinics    int    `json:"working_clinics"`
	OutOfOrderClinics int    `json:"out_of_order_clinics"`
	NotWorkingClinics int    `json:"not_working_clinics"`
}

type SummaryResponse struct {
	Criteria     aggregation.Criteria                         `json:"criteria"`
	Stats        aggregation.Stats                            `json:"stats"`
	StatusCounts aggregation.StatusCounts                     `json:"status_counts"`
	SectorGroups map[string]map[string]aggregation.GroupStats `json:"sector_groups"`
}

func FromFacility(f entities.Facility) FacilityResponse {
	return FacilityResponse{
		ID:                f.ID,
		Name:              f.Name,
		Sector:            f.Sector,
		Category:          f.Category,
		Status:            string(f.Status),
		TotalClinics:      f.TotalClinics,
		WorkingClinics:    f.WorkingClinics,
		OutOfOrderClinics: f.OutOfOrderClinics,
		NotWorkingClinics: f.NotWorkingClinics,
	}
}

func FromFacilities(list []entities.Facility) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFacility(f))
	}
	return out
}

func FromSummary(s usecase.DashboardSummary) SummaryResponse {
	return SummaryResponse{
		Criteria:     s.Criteria,
		Stats:        s.Stats,
		StatusCounts: s.StatusCounts,
		SectorGroups: s.SectorGroups,
	}
}
