package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/adapter/http/handlers/mocks"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLifecycleHandler_CreateEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)

		r := gin.New()
		r.POST("/v1/entities", h.CreateEntity)

		req := httptest.NewRequest(http.MethodPost, "/v1/entities", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)

		r := gin.New()
		r.POST("/v1/entities", h.CreateEntity)

		uc.EXPECT().Create(gomock.Any(), entities.EntityKind("invoice"), "", "").Return(entities.LifecycleEntity{}, usecase.ErrInvalidEntityKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/entities", bytes.NewBufferString(`{"kind":"invoice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success normalizes kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)

		r := gin.New()
		r.POST("/v1/entities", h.CreateEntity)

		uc.EXPECT().Create(gomock.Any(), entities.KindContract, "created", "admin").Return(entities.LifecycleEntity{
			ID:            "ent-1",
			Kind:          entities.KindContract,
			CurrentStatus: entities.StatusNew,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/entities", bytes.NewBufferString(`{"kind":"Contract","note":"created","actor":"admin"}`))
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
		if body["id"] != "ent-1" || body["current_status"] != "new" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLifecycleHandler_TransitionEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *LifecycleHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/entities/:id/status", h.TransitionEntity)
		return r
	}

	t.Run("invalid transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Transition(gomock.Any(), "ent-1", entities.StatusApproved, "", "").Return(entities.LifecycleEntity{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/entities/ent-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("storage conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Transition(gomock.Any(), "ent-1", entities.StatusApproved, "", "").Return(entities.LifecycleEntity{}, usecase.ErrStorageConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/entities/ent-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Transition(gomock.Any(), "missing", entities.StatusApproved, "", "").Return(entities.LifecycleEntity{}, usecase.ErrEntityNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/entities/missing/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Transition(gomock.Any(), "ent-1", entities.StatusApproved, "ok", "admin").Return(entities.LifecycleEntity{
			ID:            "ent-1",
			Kind:          entities.KindContract,
			CurrentStatus: entities.StatusApproved,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/entities/ent-1/status", bytes.NewBufferString(`{"status":"Approved","note":"ok","actor":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestLifecycleHandler_PresentEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewLifecycleHandler(uc)

	r := gin.New()
	r.GET("/v1/entities/:id/presentation", h.PresentEntity)

	overdue := 10
	uc.EXPECT().Present(gomock.Any(), "ent-1", gomock.AssignableToTypeOf(time.Time{})).Return(usecase.PresentationView{
		ID:            "ent-1",
		Kind:          entities.KindContract,
		CurrentStatus: entities.StatusApproved,
		NamedAuditFields: map[string]string{
			"creation_date": "2024-01-01T00:00:00Z",
		},
		ElapsedText: "31 يوم 0 ساعة",
		OverdueDays: &overdue,
		AllowedNext: []entities.Status{entities.StatusApproved, entities.StatusContracted, entities.StatusDelivered, entities.StatusRejected},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/entities/ent-1/presentation", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["elapsed_text"] != "31 يوم 0 ساعة" {
		t.Fatalf("unexpected elapsed text: %v", body["elapsed_text"])
	}
	if body["overdue_days"] != float64(10) {
		t.Fatalf("unexpected overdue days: %v", body["overdue_days"])
	}
	fields, ok := body["named_audit_fields"].(map[string]any)
	if !ok || fields["creation_date"] != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected audit fields: %v", body["named_audit_fields"])
	}
}

func TestLifecycleHandler_ListEntities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes kind query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)

		r := gin.New()
		r.GET("/v1/entities", h.ListEntities)

		uc.EXPECT().ListByKind(gomock.Any(), entities.KindReport).Return([]entities.LifecycleEntity{{ID: "r1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/entities?kind=report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc)

		r := gin.New()
		r.GET("/v1/entities", h.ListEntities)

		uc.EXPECT().ListByKind(gomock.Any(), entities.KindReport).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/entities?kind=report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLifecycleHandler_DeleteEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewLifecycleHandler(uc)

	r := gin.New()
	r.DELETE("/v1/entities/:id", h.DeleteEntity)

	uc.EXPECT().Delete(gomock.Any(), "ent-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/entities/ent-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
