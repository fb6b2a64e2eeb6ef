package entities

import (
	"testing"
	"time"
)

func TestLifecycleEntity_Latest(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := LifecycleEntity{
		History: []StatusEvent{
			{Status: StatusOpen, Timestamp: base, Note: "first"},
			{Status: StatusPaused, Timestamp: base.Add(time.Hour)},
			{Status: StatusOpen, Timestamp: base.Add(2 * time.Hour), Note: "reopened"},
		},
	}

	t.Run("returns latest occurrence", func(t *testing.T) {
		ev, ok := e.Latest(StatusOpen)
		if !ok {
			t.Fatalf("expected event")
		}
		if ev.Note != "reopened" {
			t.Fatalf("expected latest open event, got %+v", ev)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		if _, ok := e.Latest(StatusClosed); ok {
			t.Fatalf("expected no event")
		}
	})
}

func TestLifecycleEntity_Append(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	orig := LifecycleEntity{
		ID:            "ent-1",
		Kind:          KindContract,
		CurrentStatus: StatusNew,
		History:       []StatusEvent{{Status: StatusNew, Timestamp: base}},
		CreatedAt:     base,
		UpdatedAt:     base,
	}

	next := orig.Append(StatusEvent{Status: StatusApproved, Timestamp: base.Add(time.Hour), Actor: "admin"})

	if next.CurrentStatus != StatusApproved {
		t.Fatalf("expected approved, got %s", next.CurrentStatus)
	}
	if len(next.History) != 2 {
		t.Fatalf("expected 2 events, got %d", len(next.History))
	}
	if !next.UpdatedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("expected updated_at to follow the event timestamp")
	}
	if len(orig.History) != 1 || orig.CurrentStatus != StatusNew {
		t.Fatalf("receiver must not be mutated: %+v", orig)
	}

	// The returned history must not alias the receiver's backing array.
	next.History[0].Note = "tampered"
	if orig.History[0].Note != "" {
		t.Fatalf("histories share a backing array")
	}
}
