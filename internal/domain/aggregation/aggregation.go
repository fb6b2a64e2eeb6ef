// Package aggregation is the pure filter/reduce engine behind the dashboard
// summaries. It takes facility snapshots supplied by the persistence
// collaborator and owns no state of its own.
package aggregation

import (
	"strings"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

// All is the sentinel filter value meaning "no filter on this dimension".
const All = "all"

// Criteria is an immutable filter over facilities. Dimensions combine with
// AND semantics; an empty or "all" value leaves the dimension unfiltered.
type Criteria struct {
	Sector   string `json:"sector,omitempty"`
	Category string `json:"category,omitempty"`
}

func (c Criteria) matches(f entities.Facility) bool {
	if !dimensionMatches(c.Sector, f.Sector) {
		return false
	}
	return dimensionMatches(c.Category, f.Category)
}

func dimensionMatches(want, have string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, All) || want == have
}

// FilterFacilities returns the facilities matching the criteria, in input
// order.
func FilterFacilities(facilities []entities.Facility, c Criteria) []entities.Facility {
	out := make([]entities.Facility, 0, len(facilities))
	for _, f := range facilities {
		if c.matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// Stats are the clinic counters summed over a facility set.
type Stats struct {
	TotalClinics      int `json:"total_clinics"`
	WorkingClinics    int `json:"working_clinics"`
	NotWorkingClinics int `json:"not_working_clinics"`
	OutOfOrderClinics int `json:"out_of_order_clinics"`
	TotalFacilities   int `json:"total_facilities"`
}

// ReduceStats sums the per-facility clinic counters.
func ReduceStats(facilities []entities.Facility) Stats {
	var s Stats
	for _, f := range facilities {
		s.TotalClinics += f.TotalClinics
		s.WorkingClinics += f.WorkingClinics
		s.NotWorkingClinics += f.NotWorkingClinics
		s.OutOfOrderClinics += f.OutOfOrderClinics
	}
	s.TotalFacilities = len(facilities)
	return s
}

// StatusCounts buckets facilities by operating status.
type StatusCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// FacilityStatusCounts counts facilities by status. Unknown status values are
// counted as inactive rather than dropped, so totals stay consistent.
func FacilityStatusCounts(facilities []entities.Facility) StatusCounts {
	var c StatusCounts
	for _, f := range facilities {
		if f.Status == entities.FacilityStatusActive {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}

// GroupStats is one sector/category cell of the grouped summary.
type GroupStats struct {
	Count      int `json:"count"`
	ClinicsSum int `json:"clinics_sum"`
}

// GroupBySectorAndCategory builds the nested sector -> category -> stats map.
// Filtering on a sector first and grouping after yields exactly that sector's
// entry of the full grouping.
func GroupBySectorAndCategory(facilities []entities.Facility) map[string]map[string]GroupStats {
	out := make(map[string]map[string]GroupStats)
	for _, f := range facilities {
		byCategory, ok := out[f.Sector]
		if !ok {
			byCategory = make(map[string]GroupStats)
			out[f.Sector] = byCategory
		}
		g := byCategory[f.Category]
		g.Count++
		g.ClinicsSum += f.TotalClinics
		byCategory[f.Category] = g
	}
	return out
}
