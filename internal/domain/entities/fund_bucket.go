package entities

import (
	"fmt"
	"strings"
	"time"
)

// BucketKind names one of the sub-amounts held by an escrow.
type BucketKind string

const (
	BucketKindDeposit        BucketKind = "deposit"
	BucketKindFirstMonthRent BucketKind = "first_month_rent"
	BucketKindPrepaidRent    BucketKind = "prepaid_rent"
)

func (k BucketKind) Valid() bool {
	switch k {
	case BucketKindDeposit, BucketKindFirstMonthRent, BucketKindPrepaidRent:
		return true
	}
	return false
}

// DefaultRecipient is the party a bucket of this kind pays out to.
// Deposits go back to the tenant, rent goes to the landlord.
func (k BucketKind) DefaultRecipient() PartyRole {
	if k == BucketKindDeposit {
		return PartyTenant
	}
	return PartyLandlord
}

// BucketState is the per-bucket release state machine.
//
//	pending -> release_due -> released
//	pending|release_due -> disputed -> pending (release_due while a payout is in flight)
//	pending|disputed -> cancelled (escrow cancellation)
type BucketState string

const (
	BucketStatePending    BucketState = "pending"
	BucketStateReleaseDue BucketState = "release_due"
	BucketStateReleased   BucketState = "released"
	BucketStateDisputed   BucketState = "disputed"
	BucketStateCancelled  BucketState = "cancelled"
)

func (s BucketState) IsTerminal() bool {
	return s == BucketStateReleased || s == BucketStateCancelled
}

// PayoutStatus tracks the payout request of a release_due bucket.
type PayoutStatus string

const (
	PayoutStatusNone      PayoutStatus = ""
	PayoutStatusRequested PayoutStatus = "requested"
	PayoutStatusFailed    PayoutStatus = "failed"
	PayoutStatusConfirmed PayoutStatus = "confirmed"
)

// FundBucket is a single amount held by an escrow with its own release policy.
//
// Amount is expressed in the smallest currency unit.
type FundBucket struct {
	ID        string        `json:"id"`
	Kind      BucketKind    `json:"kind"`
	Amount    int64         `json:"amount"`
	Policy    ReleasePolicy `json:"release_policy"`
	Recipient PartyRole     `json:"recipient"`
	State     BucketState   `json:"state"`

	DueAt      *time.Time `json:"due_at,omitempty"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`

	PayoutStatus        PayoutStatus `json:"payout_status,omitempty"`
	PayoutAttempts      int          `json:"payout_attempts"`
	LastPayoutRequestAt *time.Time   `json:"last_payout_request_at,omitempty"`
	LastPayoutError     string       `json:"last_payout_error,omitempty"`
	ProviderPaymentID   string       `json:"provider_payment_id,omitempty"`

	DisputedBy PartyRole  `json:"disputed_by,omitempty"`
	DisputedAt *time.Time `json:"disputed_at,omitempty"`

	VoteRound int            `json:"vote_round"`
	Votes     []ApprovalVote `json:"votes,omitempty"`
}

// BucketID builds the globally unique id of a bucket. The escrow id is
// recoverable from it, which lets payout callbacks carry only the bucket id.
func BucketID(escrowID string, kind BucketKind) string {
	return escrowID + ":" + string(kind)
}

// ParseBucketID splits a bucket id built by BucketID.
func ParseBucketID(bucketID string) (string, BucketKind, error) {
	i := strings.LastIndex(bucketID, ":")
	if i <= 0 || i == len(bucketID)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrBucketNotFound, bucketID)
	}
	kind := BucketKind(bucketID[i+1:])
	if !kind.Valid() {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidBucketKind, bucketID)
	}
	return bucketID[:i], kind, nil
}

// markDue moves a pending or disputed bucket to release_due and stamps a
// fresh payout request.
func (b *FundBucket) markDue(now time.Time) Event {
	b.State = BucketStateReleaseDue
	b.DueAt = timePtr(now)
	return b.requestPayout(now)
}

func (b *FundBucket) requestPayout(now time.Time) Event {
	b.PayoutStatus = PayoutStatusRequested
	b.PayoutAttempts++
	b.LastPayoutRequestAt = timePtr(now)
	return Event{
		Type:       EventReleaseRequested,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Recipient:  b.Recipient,
		Amount:     b.Amount,
		Attempt:    b.PayoutAttempts,
		OccurredAt: now,
	}
}

// payoutRetryDue reports whether a release_due bucket should re-emit its
// payout request at now.
func (b *FundBucket) payoutRetryDue(now time.Time, retryAfter time.Duration) bool {
	if b.State != BucketStateReleaseDue {
		return false
	}
	switch b.PayoutStatus {
	case PayoutStatusFailed, PayoutStatusNone:
		return true
	case PayoutStatusRequested:
		return b.LastPayoutRequestAt == nil || !now.Before(b.LastPayoutRequestAt.Add(retryAfter))
	}
	return false
}

func (b FundBucket) clone() FundBucket {
	out := b
	out.Policy = b.Policy.clone()
	out.DueAt = clonePtr(b.DueAt)
	out.ReleasedAt = clonePtr(b.ReleasedAt)
	out.LastPayoutRequestAt = clonePtr(b.LastPayoutRequestAt)
	out.DisputedAt = clonePtr(b.DisputedAt)
	if b.Votes != nil {
		out.Votes = append([]ApprovalVote(nil), b.Votes...)
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	t = t.UTC()
	return &t
}

func clonePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
