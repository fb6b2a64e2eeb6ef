package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/aggregation"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFacilityNotFound  = errors.New("facility not found")
	ErrInvalidFacilityID = errors.New("invalid facility id")
)

const (
	dashboardCachePrefix = "dashboard:summary:"
	dashboardCacheTTL    = 5 * time.Minute
)

// DashboardSummary bundles the aggregation results one dashboard render
// needs.
type DashboardSummary struct {
	Criteria     aggregation.Criteria                         `json:"criteria"`
	Stats        aggregation.Stats                            `json:"stats"`
	StatusCounts aggregation.StatusCounts                     `json:"status_counts"`
	SectorGroups map[string]map[string]aggregation.GroupStats `json:"sector_groups"`
}

// IDashboardUseCase serves facility records and their dashboard aggregation.

type IDashboardUseCase interface {
	CreateFacility(ctx context.Context, f entities.Facility) (entities.Facility, error)
	ListFacilities(ctx context.Context, criteria aggregation.Criteria) ([]entities.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
	Summary(ctx context.Context, criteria aggregation.Criteria) (DashboardSummary, error)
}

type DashboardUseCase struct {
	repo  interfaces.IFacilityRepository
	cache interfaces.IDashboardCache
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

// NewDashboardUseCase builds the dashboard use case. cache may be nil; the
// summary then recomputes on every call.
func NewDashboardUseCase(repo interfaces.IFacilityRepository, cache interfaces.IDashboardCache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

func (u *DashboardUseCase) CreateFacility(ctx context.Context, f entities.Facility) (entities.Facility, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Sector = strings.TrimSpace(f.Sector)
	f.Category = strings.TrimSpace(f.Category)

	var v validator
	v.requireNonEmpty("name", f.Name)
	v.requireNonEmpty("sector", f.Sector)
	v.requireNonEmpty("category", f.Category)
	if f.Status != entities.FacilityStatusActive && f.Status != entities.FacilityStatusInactive {
		v.addf("status", "must be active or inactive")
	}
	for field, count := range map[string]int{
		"total_clinics":        f.TotalClinics,
		"working_clinics":      f.WorkingClinics,
		"out_of_order_clinics": f.OutOfOrderClinics,
		"not_working_clinics":  f.NotWorkingClinics,
	} {
		if count < 0 {
			v.addf(field, "must not be negative")
		}
	}
	if err := v.err(); err != nil {
		return entities.Facility{}, err
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return u.repo.Create(ctx, f)
}

func (u *DashboardUseCase) ListFacilities(ctx context.Context, criteria aggregation.Criteria) ([]entities.Facility, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return aggregation.FilterFacilities(all, criteria), nil
}

func (u *DashboardUseCase) DeleteFacility(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFacilityID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFacilityNotFound
	}
	return nil
}

func (u *DashboardUseCase) Summary(ctx context.Context, criteria aggregation.Criteria) (DashboardSummary, error) {
	key := summaryCacheKey(criteria)
	if u.cache != nil {
		if raw, ok, err := u.cache.Get(ctx, key); err != nil {
			// The cache is advisory; a broken cache must not break the page.
			log.Printf("[dashboard][usecase] cache read failed key=%s err=%v", key, err)
		} else if ok {
			var cached DashboardSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			log.Printf("[dashboard][usecase] cache entry corrupt key=%s", key)
		}
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	filtered := aggregation.FilterFacilities(all, criteria)
	summary := DashboardSummary{
		Criteria:     criteria,
		Stats:        aggregation.ReduceStats(filtered),
		StatusCounts: aggregation.FacilityStatusCounts(filtered),
		SectorGroups: aggregation.GroupBySectorAndCategory(filtered),
	}

	if u.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := u.cache.Set(ctx, key, raw, dashboardCacheTTL); err != nil {
				log.Printf("[dashboard][usecase] cache write failed key=%s err=%v", key, err)
			}
		}
	}
	return summary, nil
}

func summaryCacheKey(c aggregation.Criteria) string {
	sector := c.Sector
	if sector == "" {
		sector = aggregation.All
	}
	category := c.Category
	if category == "" {
		category = aggregation.All
	}
	return fmt.Sprintf("%s%s:%s", dashboardCachePrefix, sector, category)
}
