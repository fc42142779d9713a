package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_escrow/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func manualInput(id string) entities.NewEscrowInput {
	return leaseInput(id,
		entities.BucketSpec{Kind: entities.BucketKindDeposit, Amount: 15000, Policy: entities.Manual()},
	)
}

func TestApprovalUseCase_MutualApprovalRequestsPayout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.activate(t, manualInput("esc-1"))

	if _, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyLandlord, entities.VoteApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error) {
			if req.BucketID != "esc-1:deposit" || req.RecipientRef != "tenant-1" || req.Amount != 15000 {
				t.Errorf("unexpected payout request: %+v", req)
			}
			return confirmedReceipt(req)
		})
	if _, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, _ := f.escrows.GetByID(ctx, "esc-1")
	if e.Status != entities.EscrowStatusClosed {
		t.Fatalf("expected closed escrow, got %s", e.Status)
	}
}

func TestApprovalUseCase_RejectRaisesDispute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.activate(t, manualInput("esc-1"))

	if _, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyLandlord, entities.VoteApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := bucketState(t, e, entities.BucketKindDeposit); b.State != entities.BucketStateDisputed {
		t.Fatalf("expected disputed bucket, got %s", b.State)
	}

	// The landlord's approval predates the dispute and no longer counts.
	f.setNow(f.clock().AddDate(1, 0, 0))
	if _, err := f.scheduler.TickAll(ctx, f.clock()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, _ = f.escrows.GetByID(ctx, "esc-1")
	if b := bucketState(t, e, entities.BucketKindDeposit); b.State != entities.BucketStateDisputed {
		t.Fatalf("expected bucket to stay disputed, got %s", b.State)
	}
}

func TestApprovalUseCase_AutoApprovalBySweep(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.activate(t, manualInput("esc-1"))

	voted := f.clock()
	if _, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := f.scheduler.TickAll(ctx, voted.AddDate(0, 0, entities.DefaultAutoApprovalDays).Add(-time.Second))
	if err != nil || report.Events != 0 {
		t.Fatalf("expected a quiet sweep, got %+v err=%v", report, err)
	}

	f.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error) {
			return confirmedReceipt(req)
		})
	report, err = f.scheduler.TickAll(ctx, voted.AddDate(0, 0, entities.DefaultAutoApprovalDays))
	if err != nil || report.Events != 2 {
		t.Fatalf("expected auto-approval and release request, got %+v err=%v", report, err)
	}
}

func TestApprovalUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.activate(t, scenarioInput("esc-1"))

	tests := []struct {
		name     string
		escrowID string
		kind     entities.BucketKind
		party    entities.PartyRole
		decision entities.VoteDecision
		want     error
	}{
		{"empty escrow id", " ", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove, entities.ErrInvalidEscrowID},
		{"unknown kind", "esc-1", "pet_fee", entities.PartyTenant, entities.VoteApprove, entities.ErrInvalidBucketKind},
		{"missing escrow", "esc-9", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove, ErrEscrowNotFound},
		{"time-based bucket", "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove, entities.ErrVotingNotOpen},
		{"bad decision", "esc-1", entities.BucketKindDeposit, entities.PartyTenant, "abstain", entities.ErrInvalidDecision},
		{"bucket not held", "esc-1", entities.BucketKindPrepaidRent, entities.PartyTenant, entities.VoteApprove, entities.ErrBucketNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.approvals.RecordVote(ctx, tt.escrowID, tt.kind, tt.party, tt.decision)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestApprovalUseCase_DuplicateVote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.activate(t, manualInput("esc-1"))

	if _, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := f.approvals.RecordVote(ctx, "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteApprove)
	if !errors.Is(err, entities.ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}
}
