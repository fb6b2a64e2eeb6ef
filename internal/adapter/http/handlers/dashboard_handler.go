package handlers

import (
	"errors"
	"net/http"

	request "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/request"
	response "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/response"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/aggregation"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
	"github.com/RamziBenssaci/ren-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFacilityPayload = pkg.NewDomainErrorSimple("INVALID_FACILITY_INPUT", "Invalid facility payload", http.StatusBadRequest)

// DashboardHandler serves facility records and the aggregated dashboard.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) CreateFacility(c *gin.Context) {
	var payload request.CreateFacilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFacilityPayload.HTTPStatus, errInvalidFacilityPayload.ToHTTPError())
		return
	}

	f, err := h.usecase.CreateFacility(c.Request.Context(), payload.ToFacility())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFacility(f))
}

func (h *DashboardHandler) ListFacilities(c *gin.Context) {
	list, err := h.usecase.ListFacilities(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFacilities(list))
}

func (h *DashboardHandler) DeleteFacility(c *gin.Context) {
	if err := h.usecase.DeleteFacility(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary returns the aggregated clinic/facility counters for the dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

func criteriaFromQuery(c *gin.Context) aggregation.Criteria {
	return aggregation.Criteria{
		Sector:   c.Query("sector"),
		Category: c.Query("category"),
	}
}

func mapDashboardError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationAppError(vErr)
	case errors.Is(err, usecase.ErrInvalidFacilityID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFacilityNotFound):
		return pkg.NewDomainErrorSimple("FACILITY_NOT_FOUND", "Facility not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
