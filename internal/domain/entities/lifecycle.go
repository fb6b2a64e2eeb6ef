package entities

import "time"

// EntityKind identifies which administrative record a lifecycle entity tracks.
//
// Domain notes:
//   - Contracts and purchase orders progress through a fixed forward flow.
//   - Administrative transactions use a shorter forward flow.
//   - Reports move freely between open/closed/paused.

type EntityKind string

const (
	KindContract      EntityKind = "contract"
	KindPurchaseOrder EntityKind = "purchase_order"
	KindTransaction   EntityKind = "transaction"
	KindReport        EntityKind = "report"
)

func (k EntityKind) IsValid() bool {
	switch k {
	case KindContract, KindPurchaseOrder, KindTransaction, KindReport:
		return true
	default:
		return false
	}
}

// Status is a lifecycle status value. Not every status is meaningful for every
// kind; the kind's policy decides which are reachable.

type Status string

const (
	StatusNew         Status = "new"
	StatusApproved    Status = "approved"
	StatusContracted  Status = "contracted"
	StatusDelivered   Status = "delivered"
	StatusRejected    Status = "rejected"
	StatusUnderReview Status = "under_review"
	StatusCompleted   Status = "completed"
	StatusOpen        Status = "open"
	StatusClosed      Status = "closed"
	StatusPaused      Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusEvent is one audit-trail entry. Events are immutable once appended and
// history insertion order is chronological order.
type StatusEvent struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	Actor     string    `json:"actor,omitempty"`
}

// LifecycleEntity is any record whose processing state progresses through
// named statuses (contract, purchase order, transaction, report).
//
// Storage model (DynamoDB):
//   - PK: id
//
// The most recent history event determines CurrentStatus; the two are stored
// together and mutated through a single conditional update.
type LifecycleEntity struct {
	ID            string        `json:"id"`
	Kind          EntityKind    `json:"kind"`
	CurrentStatus Status        `json:"current_status"`
	History       []StatusEvent `json:"history"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Latest returns the most recent history event with the given status.
func (e LifecycleEntity) Latest(status Status) (StatusEvent, bool) {
	for i := len(e.History) - 1; i >= 0; i-- {
		if e.History[i].Status == status {
			return e.History[i], true
		}
	}
	return StatusEvent{}, false
}

// Append returns a copy of the entity with the event appended and the current
// status updated. The receiver's history slice is never shared with the result.
func (e LifecycleEntity) Append(ev StatusEvent) LifecycleEntity {
	history := make([]StatusEvent, 0, len(e.History)+1)
	history = append(history, e.History...)
	history = append(history, ev)
	e.History = history
	e.CurrentStatus = ev.Status
	e.UpdatedAt = ev.Timestamp
	return e
}
