package lock

import (
	"context"
	"sync"
)

// MemoryLocker serializes work per escrow id inside one process.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: map[string]*slot{}}
}

func (l *MemoryLocker) Lock(ctx context.Context, escrowID string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[escrowID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[escrowID] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(escrowID, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.release(escrowID, s)
		})
	}, nil
}

func (l *MemoryLocker) release(escrowID string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, escrowID)
	}
}
