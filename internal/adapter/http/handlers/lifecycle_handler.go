package handlers

import (
	"errors"
	"net/http"
	"time"

	request "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/request"
	response "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/response"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
	"github.com/RamziBenssaci/ren-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEntityPayload = pkg.NewDomainErrorSimple("INVALID_ENTITY_INPUT", "Invalid entity payload", http.StatusBadRequest)

// LifecycleHandler handles HTTP requests for lifecycle entities: contracts,
// purchase orders, transactions and reports all share these routes.

type LifecycleHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewLifecycleHandler(uc usecase.ILifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc}
}

// CreateEntity opens a new record in its kind's initial status with one
// synthetic created event.
func (h *LifecycleHandler) CreateEntity(c *gin.Context) {
	var payload request.CreateEntityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEntityPayload.HTTPStatus, errInvalidEntityPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), payload.ResolveKind(), payload.Note, payload.Actor)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEntity(e))
}

// TransitionEntity applies one status transition after policy validation.
func (h *LifecycleHandler) TransitionEntity(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEntityPayload.HTTPStatus, errInvalidEntityPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), payload.Note, payload.Actor)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEntity(e))
}

func (h *LifecycleHandler) GetEntity(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEntity(e))
}

// PresentEntity returns the full render payload: audit fields, elapsed text,
// overdue days and the statuses still reachable.
func (h *LifecycleHandler) PresentEntity(c *gin.Context) {
	view, err := h.usecase.Present(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPresentation(view))
}

func (h *LifecycleHandler) ListEntities(c *gin.Context) {
	kind := entities.EntityKind(c.Query("kind"))
	list, err := h.usecase.ListByKind(c.Request.Context(), kind)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEntities(list))
}

func (h *LifecycleHandler) DeleteEntity(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapLifecycleError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationAppError(vErr)
	case errors.Is(err, usecase.ErrInvalidEntityID), errors.Is(err, usecase.ErrInvalidEntityKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEntityNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageConflict):
		return pkg.NewDomainErrorSimple("STORAGE_CONFLICT", "Concurrent modification, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationAppError surfaces every failing field in one response.
func validationAppError(vErr *usecase.ValidationError) *pkg.AppError {
	details := make([]pkg.ErrorDetail, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		details = append(details, pkg.ErrorDetail{Field: f.Field, Message: f.Message})
	}
	return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Validation failed", http.StatusBadRequest).WithDetails(details)
}
