package handlers

import (
	"errors"
	"net/http"

	request "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/request"
	response "github.com/RamziBenssaci/ren-sub000/internal/adapter/http/dto/response"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
	"github.com/RamziBenssaci/ren-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid inventory payload", http.StatusBadRequest)

// InventoryHandler handles HTTP requests for the warehouse ledger.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	value, err := payload.ResolvePurchaseValue()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), usecase.AddItemInput{
		ItemNumber:    payload.ItemNumber,
		ItemName:      payload.ItemName,
		ReceivedQty:   payload.ReceivedQty,
		IssuedQty:     payload.IssuedQty,
		MinQuantity:   payload.MinQuantity,
		PurchaseValue: value,
		SupplierName:  payload.SupplierName,
	})
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(item))
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_number"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	value, err := payload.ResolvePurchaseValue()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("item_number"), usecase.UpdateItemInput{
		ItemName:      payload.ItemName,
		ReceivedQty:   payload.ReceivedQty,
		IssuedQty:     payload.IssuedQty,
		MinQuantity:   payload.MinQuantity,
		PurchaseValue: value,
		SupplierName:  payload.SupplierName,
	})
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

// DeleteItem removes the item and, with it, its withdrawal history.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("item_number")); err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Withdraw(c *gin.Context) {
	var payload request.WithdrawRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Withdraw(c.Request.Context(), c.Param("item_number"), usecase.WithdrawInput{
		Quantity:            payload.Quantity,
		BeneficiaryFacility: payload.BeneficiaryFacility,
		RecipientName:       payload.RecipientName,
		RecipientContact:    payload.RecipientContact,
	})
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWithdrawalOrder(order))
}

func (h *InventoryHandler) ResolveWithdrawal(c *gin.Context) {
	var payload request.ResolveWithdrawalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.ResolveWithdrawal(c.Request.Context(), c.Param("item_number"), c.Param("order_number"), payload.ResolveStatus())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *InventoryHandler) TotalValue(c *gin.Context) {
	total, err := h.usecase.TotalValue(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TotalValueResponse{TotalValue: total})
}

func (h *InventoryHandler) LowStockItems(c *gin.Context) {
	items, err := h.usecase.LowStockItems(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

func mapInventoryError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationAppError(vErr)
	case errors.Is(err, usecase.ErrInvalidItemNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemAlreadyExists):
		return pkg.NewDomainErrorSimple("ITEM_ALREADY_EXISTS", "Item number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWithdrawalNotFound):
		return pkg.NewDomainErrorSimple("WITHDRAWAL_NOT_FOUND", "Withdrawal order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWithdrawalNotOpen):
		return pkg.NewDomainErrorSimple("WITHDRAWAL_NOT_OPEN", "Withdrawal order already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Requested quantity exceeds available stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrStorageConflict):
		return pkg.NewDomainErrorSimple("STORAGE_CONFLICT", "Concurrent modification, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
