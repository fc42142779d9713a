package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"rental_escrow/internal/domain/entities"
)

//go:generate mockgen -source=approval_usecase.go -destination=../adapter/http/handlers/mocks/approval_usecase_mock.go -package=mocks

// IApprovalUseCase coordinates mutual-approval releases.
//
// Rules (enforced by the aggregate):
//   - one vote per party per round, otherwise entities.ErrDuplicateVote
//   - a reject raises a dispute and never releases
//   - two approvals make the bucket release_due
//   - a lone approval older than the escrow's auto-approval window is
//     released by the scheduler tick

type IApprovalUseCase interface {
	RecordVote(ctx context.Context, escrowID string, kind entities.BucketKind, party entities.PartyRole, decision entities.VoteDecision) (entities.Escrow, error)
}

type ApprovalUseCase struct {
	store      *escrowStore
	dispatcher *eventDispatcher
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(deps Dependencies, payouts IPayoutUseCase) *ApprovalUseCase {
	var requester payoutRequester
	if payouts != nil {
		requester = payouts
	}
	return &ApprovalUseCase{
		store:      newEscrowStore(deps),
		dispatcher: newEventDispatcher(deps, requester),
	}
}

func (u *ApprovalUseCase) RecordVote(ctx context.Context, escrowID string, kind entities.BucketKind, party entities.PartyRole, decision entities.VoteDecision) (entities.Escrow, error) {
	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return entities.Escrow{}, entities.ErrInvalidEscrowID
	}
	if !kind.Valid() {
		return entities.Escrow{}, entities.ErrInvalidBucketKind
	}
	log.Printf("[approval][usecase] vote start escrow_id=%s bucket=%s party=%s decision=%s", escrowID, kind, party, decision)

	e, events, err := u.store.mutate(ctx, escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.RecordVote(entities.BucketID(e.ID, kind), party, decision, now)
	})
	if err != nil {
		log.Printf("[approval][usecase] vote rejected escrow_id=%s bucket=%s party=%s err=%v", escrowID, kind, party, err)
		return entities.Escrow{}, err
	}
	log.Printf("[approval][usecase] vote recorded escrow_id=%s bucket=%s events=%d", escrowID, kind, len(events))
	u.dispatcher.dispatch(ctx, e, events)
	return e, nil
}
