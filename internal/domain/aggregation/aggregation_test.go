package aggregation

import (
	"reflect"
	"testing"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
)

func sampleFacilities() []entities.Facility {
	return []entities.Facility{
		{ID: "f1", Name: "North Clinic", Sector: "north", Category: "general", Status: entities.FacilityStatusActive, TotalClinics: 10, WorkingClinics: 8, NotWorkingClinics: 1, OutOfOrderClinics: 1},
		{ID: "f2", Name: "North Dental", Sector: "north", Category: "dental", Status: entities.FacilityStatusInactive, TotalClinics: 4, WorkingClinics: 2, NotWorkingClinics: 2},
		{ID: "f3", Name: "South Clinic", Sector: "south", Category: "general", Status: entities.FacilityStatusActive, TotalClinics: 6, WorkingClinics: 6},
	}
}

func TestFilterFacilities(t *testing.T) {
	all := sampleFacilities()

	t.Run("no filter", func(t *testing.T) {
		if got := FilterFacilities(all, Criteria{}); len(got) != 3 {
			t.Fatalf("expected 3 facilities, got %d", len(got))
		}
	})

	t.Run("all sentinel is case insensitive", func(t *testing.T) {
		if got := FilterFacilities(all, Criteria{Sector: "ALL", Category: "All"}); len(got) != 3 {
			t.Fatalf("expected 3 facilities, got %d", len(got))
		}
	})

	t.Run("sector filter", func(t *testing.T) {
		got := FilterFacilities(all, Criteria{Sector: "north"})
		if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("dimensions combine with AND", func(t *testing.T) {
		got := FilterFacilities(all, Criteria{Sector: "north", Category: "dental"})
		if len(got) != 1 || got[0].ID != "f2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := FilterFacilities(all, Criteria{Sector: "east"}); len(got) != 0 {
			t.Fatalf("expected empty, got %+v", got)
		}
	})

	t.Run("values are exact, not case folded", func(t *testing.T) {
		if got := FilterFacilities(all, Criteria{Sector: "North"}); len(got) != 0 {
			t.Fatalf("sector values must match exactly, got %+v", got)
		}
	})
}

func TestReduceStats(t *testing.T) {
	got := ReduceStats(sampleFacilities())
	want := Stats{
		TotalClinics:      20,
		WorkingClinics:    16,
		NotWorkingClinics: 3,
		OutOfOrderClinics: 1,
		TotalFacilities:   3,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if empty := ReduceStats(nil); empty != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestFacilityStatusCounts(t *testing.T) {
	facilities := sampleFacilities()
	facilities = append(facilities, entities.Facility{ID: "f4", Status: entities.FacilityStatus("unknown")})

	got := FacilityStatusCounts(facilities)
	if got.Active != 2 || got.Inactive != 2 {
		t.Fatalf("expected 2 active / 2 inactive, got %+v", got)
	}
	if got.Active+got.Inactive != len(facilities) {
		t.Fatalf("counts must cover every facility")
	}
}

func TestGroupBySectorAndCategory(t *testing.T) {
	got := GroupBySectorAndCategory(sampleFacilities())
	want := map[string]map[string]GroupStats{
		"north": {
			"general": {Count: 1, ClinicsSum: 10},
			"dental":  {Count: 1, ClinicsSum: 4},
		},
		"south": {
			"general": {Count: 1, ClinicsSum: 6},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFilterThenGroupMatchesGroupEntry(t *testing.T) {
	all := sampleFacilities()

	full := GroupBySectorAndCategory(all)
	filtered := GroupBySectorAndCategory(FilterFacilities(all, Criteria{Sector: "north"}))

	if !reflect.DeepEqual(filtered["north"], full["north"]) {
		t.Fatalf("filtering first must not change the sector's grouping: %+v vs %+v", filtered["north"], full["north"])
	}
	if len(filtered) != 1 {
		t.Fatalf("expected only the filtered sector, got %+v", filtered)
	}
}
