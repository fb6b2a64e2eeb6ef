package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/duration"
	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEntityNotFound    = errors.New("lifecycle entity not found")
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidEntityKind = errors.New("invalid entity kind")
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStorageConflict means a conditional write lost a race with a
	// concurrent mutation. Callers retry the whole operation from a fresh
	// read. Shared by every use case in this package.
	ErrStorageConflict = errors.New("storage conflict, retry from a fresh read")
)

// PresentationView is the plain-data projection offered to the presentation
// collaborator: no behavior, safe to serialize into any report format.
type PresentationView struct {
	ID               string
	Kind             entities.EntityKind
	CurrentStatus    entities.Status
	History          []entities.StatusEvent
	NamedAuditFields map[string]string
	ElapsedText      string
	OverdueDays      *int
	AllowedNext      []entities.Status
}

// ILifecycleUseCase exposes the status workflow operations shared by every
// entity kind: contracts, purchase orders, transactions and reports all go
// through the same policy-driven transition path instead of one copy per
// screen.

type ILifecycleUseCase interface {
	Create(ctx context.Context, kind entities.EntityKind, note, actor string) (entities.LifecycleEntity, error)
	Transition(ctx context.Context, id string, target entities.Status, note, actor string) (entities.LifecycleEntity, error)
	GetByID(ctx context.Context, id string) (entities.LifecycleEntity, error)
	ListByKind(ctx context.Context, kind entities.EntityKind) ([]entities.LifecycleEntity, error)
	Delete(ctx context.Context, id string) error
	Present(ctx context.Context, id string, now time.Time) (PresentationView, error)
}

type LifecycleUseCase struct {
	repo      interfaces.ILifecycleRepository
	graceDays int
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(repo interfaces.ILifecycleRepository) *LifecycleUseCase {
	return &LifecycleUseCase{repo: repo, graceDays: duration.DefaultGraceDays}
}

func (u *LifecycleUseCase) Create(ctx context.Context, kind entities.EntityKind, note, actor string) (entities.LifecycleEntity, error) {
	policy, ok := entities.PolicyFor(kind)
	if !ok {
		return entities.LifecycleEntity{}, ErrInvalidEntityKind
	}

	now := time.Now().UTC()
	e := entities.LifecycleEntity{
		ID:            uuid.NewString(),
		Kind:          kind,
		CurrentStatus: policy.Initial,
		History: []entities.StatusEvent{{
			Status:    policy.Initial,
			Timestamp: now,
			Note:      strings.TrimSpace(note),
			Actor:     strings.TrimSpace(actor),
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}

func (u *LifecycleUseCase) Transition(ctx context.Context, id string, target entities.Status, note, actor string) (entities.LifecycleEntity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LifecycleEntity{}, ErrInvalidEntityID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LifecycleEntity{}, err
	}
	if e.ID == "" {
		return entities.LifecycleEntity{}, ErrEntityNotFound
	}

	policy, ok := entities.PolicyFor(e.Kind)
	if !ok {
		return entities.LifecycleEntity{}, ErrInvalidEntityKind
	}
	if !policy.CanTransition(e.CurrentStatus, target) {
		return entities.LifecycleEntity{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.CurrentStatus, target)
	}

	ev := entities.StatusEvent{
		Status:    target,
		Timestamp: time.Now().UTC(),
		Note:      strings.TrimSpace(note),
		Actor:     strings.TrimSpace(actor),
	}
	updated, err := u.repo.AppendEvent(ctx, e.ID, e.CurrentStatus, ev)
	if err != nil {
		return entities.LifecycleEntity{}, err
	}
	if updated.ID == "" {
		// The conditional append lost: either a concurrent transition moved
		// the status, or the entity was deleted underneath us.
		fresh, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.LifecycleEntity{}, err
		}
		if fresh.ID == "" {
			return entities.LifecycleEntity{}, ErrEntityNotFound
		}
		return entities.LifecycleEntity{}, ErrStorageConflict
	}
	return updated, nil
}

func (u *LifecycleUseCase) GetByID(ctx context.Context, id string) (entities.LifecycleEntity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LifecycleEntity{}, ErrInvalidEntityID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LifecycleEntity{}, err
	}
	if e.ID == "" {
		return entities.LifecycleEntity{}, ErrEntityNotFound
	}
	return e, nil
}

func (u *LifecycleUseCase) ListByKind(ctx context.Context, kind entities.EntityKind) ([]entities.LifecycleEntity, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidEntityKind
	}
	return u.repo.ListByKind(ctx, kind)
}

func (u *LifecycleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEntityID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntityNotFound
	}
	return nil
}

func (u *LifecycleUseCase) Present(ctx context.Context, id string, now time.Time) (PresentationView, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return PresentationView{}, err
	}

	policy, ok := entities.PolicyFor(e.Kind)
	if !ok {
		return PresentationView{}, ErrInvalidEntityKind
	}

	view := PresentationView{
		ID:               e.ID,
		Kind:             e.Kind,
		CurrentStatus:    e.CurrentStatus,
		History:          e.History,
		NamedAuditFields: e.NamedAuditFields(),
		ElapsedText:      duration.Since(e.CreatedAt, now).String(),
		AllowedNext:      policy.AllowedNext(e.CurrentStatus),
	}
	if !policy.IsTerminal(e.CurrentStatus) {
		overdue := duration.OverdueDays(e.CreatedAt, now, u.graceDays)
		view.OverdueDays = &overdue
	}
	return view, nil
}
