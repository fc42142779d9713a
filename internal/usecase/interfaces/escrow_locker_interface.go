package interfaces

import "context"

// IEscrowLocker serializes mutations of a single escrow. Lock blocks until
// the lock is held or ctx is done; the returned func releases it.
type IEscrowLocker interface {
	Lock(ctx context.Context, escrowID string) (unlock func(), err error)
}
