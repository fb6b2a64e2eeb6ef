package request

import (
	"errors"
	"testing"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestAddItemRequest_ResolvePurchaseValue(t *testing.T) {
	t.Run("valid decimal string", func(t *testing.T) {
		r := AddItemRequest{PurchaseValue: " 1250.75 "}
		v, err := r.ResolvePurchaseValue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Equal(decimal.RequireFromString("1250.75")) {
			t.Fatalf("expected 1250.75, got %s", v)
		}
	})

	t.Run("empty defaults to zero", func(t *testing.T) {
		r := AddItemRequest{}
		v, err := r.ResolvePurchaseValue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Equal(decimal.Zero) {
			t.Fatalf("expected zero, got %s", v)
		}
	})

	t.Run("unparseable", func(t *testing.T) {
		r := AddItemRequest{PurchaseValue: "abc"}
		if _, err := r.ResolvePurchaseValue(); !errors.Is(err, ErrInvalidPurchaseValue) {
			t.Fatalf("expected ErrInvalidPurchaseValue, got %v", err)
		}
	})
}

func TestUpdateItemRequest_ResolvePurchaseValue(t *testing.T) {
	t.Run("absent stays nil", func(t *testing.T) {
		r := UpdateItemRequest{}
		v, err := r.ResolvePurchaseValue()
		if err != nil || v != nil {
			t.Fatalf("expected nil, got %v %v", v, err)
		}
	})

	t.Run("present parses", func(t *testing.T) {
		raw := "600"
		r := UpdateItemRequest{PurchaseValue: &raw}
		v, err := r.ResolvePurchaseValue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v == nil || !v.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected 600, got %v", v)
		}
	})
}

func TestResolveWithdrawalRequest_ResolveStatus(t *testing.T) {
	r := ResolveWithdrawalRequest{Status: " Fulfilled "}
	if got := r.ResolveStatus(); got != entities.WithdrawalStatusFulfilled {
		t.Fatalf("expected fulfilled, got %q", got)
	}
}
