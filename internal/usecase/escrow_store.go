package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEscrowNotFound          = errors.New("escrow not found")
	ErrRepositoryNotConfigured = errors.New("escrow repository not configured")
	ErrLockerNotConfigured     = errors.New("escrow locker not configured")
)

// Dependencies wires the ports shared by the escrow use cases.
type Dependencies struct {
	Repo      interfaces.IEscrowRepository
	Locker    interfaces.IEscrowLocker
	Identity  interfaces.IIdentityProvider
	Gateway   interfaces.IPayoutGateway
	Publisher interfaces.IEventPublisher
	Metrics   interfaces.IEscrowMetrics

	// Now defaults to time.Now().UTC().
	Now func() time.Time
	// AutoApprovalDays applies to escrows created without their own value.
	AutoApprovalDays int
	Scheduler        SchedulerConfig
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

// escrowStore runs aggregate commands under the per-escrow lock:
// lock, load, apply, save, unlock. Nothing is saved when the command
// produced no events.
type escrowStore struct {
	repo   interfaces.IEscrowRepository
	locker interfaces.IEscrowLocker
	nowFn  func() time.Time
}

type escrowCommand func(e *entities.Escrow, now time.Time) ([]entities.Event, error)

func newEscrowStore(deps Dependencies) *escrowStore {
	return &escrowStore{repo: deps.Repo, locker: deps.Locker, nowFn: deps.now}
}

func (s *escrowStore) mutate(ctx context.Context, escrowID string, cmd escrowCommand) (entities.Escrow, []entities.Event, error) {
	if s.repo == nil {
		return entities.Escrow{}, nil, ErrRepositoryNotConfigured
	}
	if s.locker == nil {
		return entities.Escrow{}, nil, ErrLockerNotConfigured
	}

	unlock, err := s.locker.Lock(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, nil, fmt.Errorf("lock escrow %s: %w", escrowID, err)
	}
	defer unlock()

	e, err := s.repo.GetByID(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, nil, err
	}
	if e.ID == "" {
		return entities.Escrow{}, nil, ErrEscrowNotFound
	}

	events, err := cmd(&e, s.nowFn())
	if err != nil {
		return entities.Escrow{}, nil, err
	}
	if len(events) == 0 {
		return e, nil, nil
	}

	saved, err := s.repo.Update(ctx, e)
	if err != nil {
		log.Printf("[escrow][store] save failed escrow_id=%s version=%d err=%v", escrowID, e.Version, err)
		return entities.Escrow{}, nil, err
	}
	return saved, events, nil
}

func (s *escrowStore) get(ctx context.Context, escrowID string) (entities.Escrow, error) {
	if s.repo == nil {
		return entities.Escrow{}, ErrRepositoryNotConfigured
	}
	e, err := s.repo.GetByID(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if e.ID == "" {
		return entities.Escrow{}, ErrEscrowNotFound
	}
	return e, nil
}

// payoutRequester is implemented by PayoutUseCase.
type payoutRequester interface {
	RequestPayout(ctx context.Context, e entities.Escrow, ev entities.Event) error
}

// eventDispatcher hands saved events to collaborators. It runs outside the
// escrow lock. Every event is logged before publication so delivery can be
// audited; notification failures are logged and not retried.
type eventDispatcher struct {
	publisher interfaces.IEventPublisher
	metrics   interfaces.IEscrowMetrics
	payouts   payoutRequester
}

func newEventDispatcher(deps Dependencies, payouts payoutRequester) *eventDispatcher {
	return &eventDispatcher{publisher: deps.Publisher, metrics: metricsOrNoop(deps.Metrics), payouts: payouts}
}

func (d *eventDispatcher) dispatch(ctx context.Context, e entities.Escrow, events []entities.Event) {
	if len(events) == 0 {
		return
	}
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		ev := events[i]
		log.Printf("[escrow][event] emit id=%s type=%s escrow_id=%s bucket_id=%s recipient=%s amount=%d",
			ev.ID, ev.Type, ev.EscrowID, ev.BucketID, ev.Recipient, ev.Amount)
		d.metrics.ObserveEvent(ev.Type)
	}

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, events...); err != nil {
			log.Printf("[escrow][event] publish failed escrow_id=%s events=%d err=%v", e.ID, len(events), err)
		}
	}

	if d.payouts == nil {
		return
	}
	for _, ev := range events {
		if ev.Type != entities.EventReleaseRequested {
			continue
		}
		if err := d.payouts.RequestPayout(ctx, e, ev); err != nil {
			log.Printf("[escrow][event] payout request failed escrow_id=%s bucket_id=%s err=%v", e.ID, ev.BucketID, err)
		}
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveTick(int, int)            {}
func (noopMetrics) ObserveEvent(entities.EventType) {}
func (noopMetrics) ObservePayoutError()             {}

func metricsOrNoop(m interfaces.IEscrowMetrics) interfaces.IEscrowMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
