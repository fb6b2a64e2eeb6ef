package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RamziBenssaci/ren-sub000/internal/adapter/http/handlers/mocks"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InventoryHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/inventory/items", h.AddItem)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable purchase value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items", bytes.NewBufferString(`{"item_number":"itm-1","item_name":"gloves","purchase_value":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries field details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(entities.InventoryItem{}, &usecase.ValidationError{
			Fields: []usecase.FieldError{
				{Field: "received_qty", Message: "must not be negative"},
				{Field: "min_quantity", Message: "must not be negative"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items", bytes.NewBufferString(`{"item_number":"itm-1","item_name":"gloves","received_qty":-1,"min_quantity":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %v", body)
		}
		details, ok := body["details"].([]any)
		if !ok || len(details) != 2 {
			t.Fatalf("expected both field errors in one response, got %v", body["details"])
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(entities.InventoryItem{}, usecase.ErrItemAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items", bytes.NewBufferString(`{"item_number":"itm-1","item_name":"gloves"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().AddItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.AddItemInput) (entities.InventoryItem, error) {
				if !in.PurchaseValue.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected purchase value: %s", in.PurchaseValue)
				}
				item := entities.InventoryItem{
					ItemNumber:    in.ItemNumber,
					ItemName:      in.ItemName,
					ReceivedQty:   in.ReceivedQty,
					IssuedQty:     in.IssuedQty,
					MinQuantity:   in.MinQuantity,
					PurchaseValue: in.PurchaseValue,
				}
				item.Recompute()
				return item, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items", bytes.NewBufferString(`{"item_number":"itm-1","item_name":"gloves","received_qty":10,"issued_qty":6,"min_quantity":2,"purchase_value":"1000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["available_qty"] != float64(4) {
			t.Fatalf("unexpected available qty: %v", body["available_qty"])
		}
		if body["unit_value"] != "100" || body["item_value"] != "400" {
			t.Fatalf("unexpected valuation: unit=%v item=%v", body["unit_value"], body["item_value"])
		}
		if body["is_low_stock"] != false {
			t.Fatalf("unexpected low stock flag: %v", body["is_low_stock"])
		}
	})
}

func TestInventoryHandler_Withdraw(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InventoryHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/inventory/items/:item_number/withdrawals", h.Withdraw)
		return r
	}

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Withdraw(gomock.Any(), "itm-1", gomock.Any()).Return(entities.WithdrawalOrder{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items/itm-1/withdrawals", bytes.NewBufferString(`{"quantity":51,"beneficiary_facility":"north","recipient_name":"nadia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("item not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Withdraw(gomock.Any(), "missing", gomock.Any()).Return(entities.WithdrawalOrder{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items/missing/withdrawals", bytes.NewBufferString(`{"quantity":1,"beneficiary_facility":"north","recipient_name":"nadia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the created order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Withdraw(gomock.Any(), "itm-1", usecase.WithdrawInput{
			Quantity:            30,
			BeneficiaryFacility: "north",
			RecipientName:       "nadia",
		}).Return(entities.WithdrawalOrder{
			OrderNumber:         "ord-1",
			Quantity:            30,
			BeneficiaryFacility: "north",
			RecipientName:       "nadia",
			Status:              entities.WithdrawalStatusOpen,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/items/itm-1/withdrawals", bytes.NewBufferString(`{"quantity":30,"beneficiary_facility":"north","recipient_name":"nadia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_number"] != "ord-1" || body["status"] != "open" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInventoryHandler_ResolveWithdrawal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.PATCH("/v1/inventory/items/:item_number/withdrawals/:order_number", h.ResolveWithdrawal)

	uc.EXPECT().ResolveWithdrawal(gomock.Any(), "itm-1", "ord-1", entities.WithdrawalStatusRejected).Return(entities.InventoryItem{
		ItemNumber:   "itm-1",
		ReceivedQty:  100,
		IssuedQty:    20,
		AvailableQty: 80,
	}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/inventory/items/itm-1/withdrawals/ord-1", bytes.NewBufferString(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["available_qty"] != float64(80) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestInventoryHandler_TotalValueAndLowStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("total value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/inventory/total-value", h.TotalValue)

		uc.EXPECT().TotalValue(gomock.Any()).Return(decimal.NewFromInt(450), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/inventory/total-value", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_value"] != "450" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("low stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/inventory/items/low-stock", h.LowStockItems)

		uc.EXPECT().LowStockItems(gomock.Any()).Return([]entities.InventoryItem{
			{ItemNumber: "b", AvailableQty: 5, MinQuantity: 5},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/inventory/items/low-stock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(list) != 1 || list[0]["is_low_stock"] != true {
			t.Fatalf("unexpected body: %v", list)
		}
	})
}

func TestInventoryHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.PATCH("/v1/inventory/items/:item_number", h.UpdateItem)

	uc.EXPECT().UpdateItem(gomock.Any(), "itm-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, in usecase.UpdateItemInput) (entities.InventoryItem, error) {
			if in.ItemName != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			if in.ReceivedQty == nil || *in.ReceivedQty != 120 {
				t.Fatalf("expected received qty patch, got %+v", in)
			}
			if in.PurchaseValue == nil || !in.PurchaseValue.Equal(decimal.NewFromInt(600)) {
				t.Fatalf("expected purchase value patch, got %+v", in)
			}
			return entities.InventoryItem{ItemNumber: "itm-1", ReceivedQty: 120, AvailableQty: 120}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPatch, "/v1/inventory/items/itm-1", bytes.NewBufferString(`{"received_qty":120,"purchase_value":"600"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
