package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/infrastructure/lock"
	mock_interfaces "rental_escrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type recordingMetrics struct {
	mu                sync.Mutex
	ticks, tickFailed int
	events            map[entities.EventType]int
	payoutErrors      int
}

func (m *recordingMetrics) ObserveTick(evaluated, failed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks += evaluated
	m.tickFailed += failed
}

func (m *recordingMetrics) ObserveEvent(t entities.EventType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events == nil {
		m.events = map[entities.EventType]int{}
	}
	m.events[t]++
}

func (m *recordingMetrics) ObservePayoutError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payoutErrors++
}

func TestSchedulerUseCase_SweepPaysEachBucketOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	const n = 25
	for i := 0; i < n; i++ {
		f.activate(t, scenarioInput(fmt.Sprintf("esc-%02d", i)))
	}

	var (
		mu   sync.Mutex
		paid = map[string]int{}
	)
	f.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error) {
			mu.Lock()
			paid[req.BucketID]++
			mu.Unlock()
			return confirmedReceipt(req)
		}).Times(n)

	now := day(2025, 9, 1)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.scheduler.TickAll(ctx, now); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	for id, count := range paid {
		if count != 1 {
			t.Fatalf("bucket %s paid %d times", id, count)
		}
	}
	ids, _ := f.repo.ListActiveIDs(ctx)
	for _, id := range ids {
		e, _ := f.escrows.GetByID(ctx, id)
		if b := bucketState(t, e, entities.BucketKindFirstMonthRent); b.State != entities.BucketStateReleased {
			t.Fatalf("escrow %s first month not released: %s", id, b.State)
		}
	}
}

func TestSchedulerUseCase_LeaseEndClosesEscrows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.activate(t, scenarioInput("esc-1"))
	f.activate(t, scenarioInput("esc-2"))

	f.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error) {
			return confirmedReceipt(req)
		}).Times(4)

	report, err := f.scheduler.TickAll(ctx, day(2026, 8, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Evaluated != 2 || report.Failed != 0 || report.Events != 4 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, id := range []string{"esc-1", "esc-2"} {
		e, _ := f.escrows.GetByID(ctx, id)
		if e.Status != entities.EscrowStatusClosed || e.ClosedAt == nil {
			t.Fatalf("escrow %s not closed: %s", id, e.Status)
		}
	}
	if ids, _ := f.repo.ListActiveIDs(ctx); len(ids) != 0 {
		t.Fatalf("closed escrows must leave the sweep, got %v", ids)
	}
}

func TestSchedulerUseCase_TickEscrowInactive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	if _, err := f.escrows.Create(ctx, scenarioInput("esc-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, err := f.scheduler.TickEscrow(ctx, "esc-1", day(2030, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != entities.EscrowStatusDraft || e.Version != 1 {
		t.Fatalf("draft escrow must not change, got %s v%d", e.Status, e.Version)
	}
	if _, err := f.scheduler.TickEscrow(ctx, "esc-404", day(2030, 1, 1)); !errors.Is(err, ErrEscrowNotFound) {
		t.Fatalf("expected ErrEscrowNotFound, got %v", err)
	}
}

func TestSchedulerUseCase_FailingEscrowDoesNotStopSweep(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEscrowRepository(ctrl)
	metrics := &recordingMetrics{}
	s := NewSchedulerUseCase(Dependencies{Repo: repo, Locker: lock.NewMemoryLocker(), Metrics: metrics}, nil)

	e, _, err := entities.NewEscrow(scenarioInput("esc-ok"), day(2025, 8, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.EXPECT().ListActiveIDs(gomock.Any()).Return([]string{"esc-broken", "esc-ok"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "esc-broken").Return(entities.Escrow{}, errors.New("dynamodb: throttled"))
	repo.EXPECT().GetByID(gomock.Any(), "esc-ok").Return(e, nil)

	report, err := s.TickAll(ctx, day(2025, 9, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Evaluated != 2 || report.Failed != 1 || report.Events != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if metrics.ticks != 2 || metrics.tickFailed != 1 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestSchedulerUseCase_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEscrowRepository(ctrl)
	s := NewSchedulerUseCase(Dependencies{Repo: repo, Locker: lock.NewMemoryLocker()}, nil)

	repo.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := s.TickAll(context.Background(), day(2025, 9, 1)); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}

	s = NewSchedulerUseCase(Dependencies{}, nil)
	if _, err := s.TickAll(context.Background(), day(2025, 9, 1)); !errors.Is(err, ErrRepositoryNotConfigured) {
		t.Fatalf("expected ErrRepositoryNotConfigured, got %v", err)
	}
}

func TestSchedulerUseCase_StartStopsWithContext(t *testing.T) {
	f := newFixture(t, false)
	f.scheduler.config.Interval = 5 * time.Millisecond
	f.activate(t, scenarioInput("esc-1"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.scheduler.Start(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop")
	}
}

func TestDefaultSchedulerConfig(t *testing.T) {
	s := NewSchedulerUseCase(Dependencies{Scheduler: SchedulerConfig{Interval: -1}}, nil)
	def := DefaultSchedulerConfig()
	if s.config.Interval != def.Interval || s.config.WorkerCount != def.WorkerCount {
		t.Fatalf("expected defaults %+v, got %+v", def, s.config)
	}
}
