package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=escrow_usecase.go -destination=../adapter/http/handlers/mocks/escrow_usecase_mock.go -package=mocks

var ErrIdentityNotConfigured = errors.New("identity provider not configured")

// IEscrowUseCase exposes the escrow command and query API.
//
// Commands map to aggregate operations:
//   - Create, Invite, Accept, ConfirmFunding, Cancel
//   - Dispute, ResolveDispute (per bucket kind)
//   - RecordLeaseEvent (e.g. move-in confirmation)
//
// Queries: GetByID (snapshot) and ListDueBuckets.

type IEscrowUseCase interface {
	Create(ctx context.Context, in entities.NewEscrowInput) (entities.Escrow, error)
	Invite(ctx context.Context, escrowID, tenantRef string) (entities.Escrow, error)
	Accept(ctx context.Context, escrowID string) (entities.Escrow, error)
	ConfirmFunding(ctx context.Context, escrowID string) (entities.Escrow, error)
	Cancel(ctx context.Context, escrowID string) (entities.Escrow, error)
	Dispute(ctx context.Context, escrowID string, kind entities.BucketKind, raisedBy entities.PartyRole, reason string) (entities.Escrow, error)
	ResolveDispute(ctx context.Context, escrowID string, kind entities.BucketKind, awardTo entities.PartyRole) (entities.Escrow, error)
	RecordLeaseEvent(ctx context.Context, escrowID string, event entities.LeaseEvent, at time.Time) (entities.Escrow, error)
	GetByID(ctx context.Context, escrowID string) (entities.Escrow, error)
	ListDueBuckets(ctx context.Context, asOf time.Time) ([]entities.DueBucket, error)
}

// ITickTrigger ticks a single escrow right after a state change that may
// make buckets due.
type ITickTrigger interface {
	TickEscrow(ctx context.Context, escrowID string, now time.Time) (entities.Escrow, error)
}

type EscrowUseCase struct {
	repo             interfaces.IEscrowRepository
	identity         interfaces.IIdentityProvider
	store            *escrowStore
	dispatcher       *eventDispatcher
	trigger          ITickTrigger
	autoApprovalDays int
	nowFn            func() time.Time
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

func NewEscrowUseCase(deps Dependencies, payouts IPayoutUseCase, trigger ITickTrigger) *EscrowUseCase {
	var requester payoutRequester
	if payouts != nil {
		requester = payouts
	}
	return &EscrowUseCase{
		repo:             deps.Repo,
		identity:         deps.Identity,
		store:            newEscrowStore(deps),
		dispatcher:       newEventDispatcher(deps, requester),
		trigger:          trigger,
		autoApprovalDays: deps.AutoApprovalDays,
		nowFn:            deps.now,
	}
}

func (u *EscrowUseCase) Create(ctx context.Context, in entities.NewEscrowInput) (entities.Escrow, error) {
	log.Printf("[escrow][usecase] create start landlord=%q tenant=%q buckets=%d", in.Landlord, in.Tenant, len(in.Buckets))
	if u.repo == nil {
		return entities.Escrow{}, ErrRepositoryNotConfigured
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.AutoApprovalDays <= 0 {
		in.AutoApprovalDays = u.autoApprovalDays
	}

	e, events, err := entities.NewEscrow(in, u.nowFn())
	if err != nil {
		log.Printf("[escrow][usecase] create rejected err=%v", err)
		return entities.Escrow{}, err
	}
	if err := u.resolve(ctx, e.Landlord); err != nil {
		return entities.Escrow{}, err
	}
	if e.Tenant != "" {
		if err := u.resolve(ctx, e.Tenant); err != nil {
			return entities.Escrow{}, err
		}
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[escrow][usecase] repository create failed escrow_id=%s err=%v", e.ID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] create success escrow_id=%s total=%d", created.ID, created.TotalAmount())
	u.dispatcher.dispatch(ctx, created, events)
	return created, nil
}

func (u *EscrowUseCase) Invite(ctx context.Context, escrowID, tenantRef string) (entities.Escrow, error) {
	tenantRef = strings.TrimSpace(tenantRef)
	if tenantRef == "" {
		return entities.Escrow{}, entities.ErrInvalidParty
	}
	if err := u.resolve(ctx, tenantRef); err != nil {
		return entities.Escrow{}, err
	}
	return u.apply(ctx, "invite", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.Invite(tenantRef, now)
	})
}

func (u *EscrowUseCase) Accept(ctx context.Context, escrowID string) (entities.Escrow, error) {
	e, err := u.apply(ctx, "accept", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.Accept(now)
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	return u.tickAfter(ctx, e), nil
}

func (u *EscrowUseCase) ConfirmFunding(ctx context.Context, escrowID string) (entities.Escrow, error) {
	e, err := u.apply(ctx, "confirm-funding", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.ConfirmFunding(now)
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	return u.tickAfter(ctx, e), nil
}

func (u *EscrowUseCase) Cancel(ctx context.Context, escrowID string) (entities.Escrow, error) {
	return u.apply(ctx, "cancel", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.Cancel(now)
	})
}

func (u *EscrowUseCase) Dispute(ctx context.Context, escrowID string, kind entities.BucketKind, raisedBy entities.PartyRole, reason string) (entities.Escrow, error) {
	if !kind.Valid() {
		return entities.Escrow{}, entities.ErrInvalidBucketKind
	}
	return u.apply(ctx, "dispute", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.Dispute(entities.BucketID(e.ID, kind), raisedBy, strings.TrimSpace(reason), now)
	})
}

func (u *EscrowUseCase) ResolveDispute(ctx context.Context, escrowID string, kind entities.BucketKind, awardTo entities.PartyRole) (entities.Escrow, error) {
	if !kind.Valid() {
		return entities.Escrow{}, entities.ErrInvalidBucketKind
	}
	return u.apply(ctx, "resolve-dispute", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.ResolveDispute(entities.BucketID(e.ID, kind), awardTo, now)
	})
}

func (u *EscrowUseCase) RecordLeaseEvent(ctx context.Context, escrowID string, event entities.LeaseEvent, at time.Time) (entities.Escrow, error) {
	e, err := u.apply(ctx, "lease-event", escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		if at.IsZero() {
			at = now
		}
		return e.RecordLeaseEvent(event, at, now)
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	return u.tickAfter(ctx, e), nil
}

func (u *EscrowUseCase) GetByID(ctx context.Context, escrowID string) (entities.Escrow, error) {
	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return entities.Escrow{}, entities.ErrInvalidEscrowID
	}
	return u.store.get(ctx, escrowID)
}

// ListDueBuckets evaluates every non-terminal escrow at asOf without
// mutating anything. Rows follow escrow order, then bucket creation order.
func (u *EscrowUseCase) ListDueBuckets(ctx context.Context, asOf time.Time) ([]entities.DueBucket, error) {
	if u.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if asOf.IsZero() {
		asOf = u.nowFn()
	}
	ids, err := u.repo.ListActiveIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.DueBucket{}
	for _, id := range ids {
		e, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if e.ID == "" {
			continue
		}
		out = append(out, e.DueBuckets(asOf)...)
	}
	return out, nil
}

func (u *EscrowUseCase) apply(ctx context.Context, op, escrowID string, cmd escrowCommand) (entities.Escrow, error) {
	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return entities.Escrow{}, entities.ErrInvalidEscrowID
	}
	log.Printf("[escrow][usecase] %s start escrow_id=%s", op, escrowID)
	e, events, err := u.store.mutate(ctx, escrowID, cmd)
	if err != nil {
		log.Printf("[escrow][usecase] %s failed escrow_id=%s err=%v", op, escrowID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] %s success escrow_id=%s status=%s events=%d", op, escrowID, e.Status, len(events))
	u.dispatcher.dispatch(ctx, e, events)
	return e, nil
}

// tickAfter runs the explicit trigger and returns the freshest snapshot it
// can. A failing tick does not fail the command that preceded it.
func (u *EscrowUseCase) tickAfter(ctx context.Context, e entities.Escrow) entities.Escrow {
	if u.trigger == nil || e.Status != entities.EscrowStatusActive {
		return e
	}
	if _, err := u.trigger.TickEscrow(ctx, e.ID, u.nowFn()); err != nil {
		log.Printf("[escrow][usecase] trigger tick failed escrow_id=%s err=%v", e.ID, err)
		return e
	}
	if fresh, err := u.store.get(ctx, e.ID); err == nil {
		return fresh
	}
	return e
}

func (u *EscrowUseCase) resolve(ctx context.Context, ref string) error {
	if u.identity == nil {
		return ErrIdentityNotConfigured
	}
	if _, err := u.identity.ResolveParty(ctx, ref); err != nil {
		log.Printf("[escrow][usecase] party lookup failed ref=%q err=%v", ref, err)
		return err
	}
	return nil
}
