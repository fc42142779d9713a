package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"
)

//go:generate mockgen -source=scheduler_usecase.go -destination=../adapter/http/handlers/mocks/scheduler_usecase_mock.go -package=mocks

// SchedulerConfig represents the trigger processor configuration
type SchedulerConfig struct {
	// Interval between two sweeps over all non-terminal escrows
	Interval time.Duration

	// WorkerCount is the number of workers ticking escrows in parallel
	WorkerCount int
}

// DefaultSchedulerConfig returns the default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:    time.Minute,
		WorkerCount: 4,
	}
}

// TickReport summarizes one sweep.
type TickReport struct {
	Evaluated int `json:"evaluated"`
	Failed    int `json:"failed"`
	Events    int `json:"events"`
}

// ISchedulerUseCase drives Tick across escrows:
//   - TickAll sweeps a snapshot of non-terminal escrow ids
//   - TickEscrow is the explicit trigger for one escrow (party check-in,
//     invitation accepted, funding confirmed)
//   - Start runs TickAll at a fixed cadence until ctx is done

type ISchedulerUseCase interface {
	TickAll(ctx context.Context, now time.Time) (TickReport, error)
	TickEscrow(ctx context.Context, escrowID string, now time.Time) (entities.Escrow, error)
	Start(ctx context.Context)
}

type SchedulerUseCase struct {
	config     SchedulerConfig
	repo       interfaces.IEscrowRepository
	store      *escrowStore
	dispatcher *eventDispatcher
	metrics    interfaces.IEscrowMetrics
	nowFn      func() time.Time
}

var _ ISchedulerUseCase = (*SchedulerUseCase)(nil)

func NewSchedulerUseCase(deps Dependencies, payouts IPayoutUseCase) *SchedulerUseCase {
	cfg := deps.Scheduler
	def := DefaultSchedulerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = def.WorkerCount
	}
	var requester payoutRequester
	if payouts != nil {
		requester = payouts
	}
	return &SchedulerUseCase{
		config:     cfg,
		repo:       deps.Repo,
		store:      newEscrowStore(deps),
		dispatcher: newEventDispatcher(deps, requester),
		metrics:    metricsOrNoop(deps.Metrics),
		nowFn:      deps.now,
	}
}

// TickEscrow re-loads and locks the escrow before ticking it, so a sweep
// working from an old id snapshot never acts on stale state. Payout
// requests go out after the lock is released.
func (s *SchedulerUseCase) TickEscrow(ctx context.Context, escrowID string, now time.Time) (entities.Escrow, error) {
	e, _, err := s.tickOne(ctx, escrowID, now)
	return e, err
}

func (s *SchedulerUseCase) tickOne(ctx context.Context, escrowID string, now time.Time) (entities.Escrow, int, error) {
	e, events, err := s.store.mutate(ctx, escrowID, func(e *entities.Escrow, _ time.Time) ([]entities.Event, error) {
		return e.Tick(now), nil
	})
	if err != nil {
		return entities.Escrow{}, 0, err
	}
	s.dispatcher.dispatch(ctx, e, events)
	return e, len(events), nil
}

// TickAll fans the snapshot out to the worker pool. A failing escrow is
// logged and counted; it never stops the sweep.
func (s *SchedulerUseCase) TickAll(ctx context.Context, now time.Time) (TickReport, error) {
	if s.repo == nil {
		return TickReport{}, ErrRepositoryNotConfigured
	}
	ids, err := s.repo.ListActiveIDs(ctx)
	if err != nil {
		log.Printf("[scheduler][usecase] list active escrows failed err=%v", err)
		return TickReport{}, err
	}
	log.Printf("[scheduler][usecase] sweep start now=%s escrows=%d workers=%d", now.Format(time.RFC3339), len(ids), s.config.WorkerCount)

	var (
		report TickReport
		mu     sync.Mutex
		wg     sync.WaitGroup
	)
	jobs := make(chan string)
	for i := 0; i < s.config.WorkerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for escrowID := range jobs {
				_, n, tickErr := s.tickOne(ctx, escrowID, now)
				if tickErr != nil {
					log.Printf("[scheduler][worker] %d: tick failed escrow_id=%s err=%v", worker, escrowID, tickErr)
				}
				mu.Lock()
				report.Evaluated++
				report.Events += n
				if tickErr != nil {
					report.Failed++
				}
				mu.Unlock()
			}
		}(i)
	}

feed:
	for _, id := range ids {
		select {
		case jobs <- id:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	s.metrics.ObserveTick(report.Evaluated, report.Failed)
	log.Printf("[scheduler][usecase] sweep done evaluated=%d failed=%d events=%d", report.Evaluated, report.Failed, report.Events)
	return report, ctx.Err()
}

// Start blocks, sweeping once immediately and then every Interval.
func (s *SchedulerUseCase) Start(ctx context.Context) {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		if _, err := s.TickAll(ctx, s.nowFn()); err != nil && ctx.Err() == nil {
			log.Printf("[scheduler][usecase] sweep failed err=%v", err)
		}
		select {
		case <-ctx.Done():
			log.Printf("[scheduler][usecase] stopped")
			return
		case <-ticker.C:
		}
	}
}
