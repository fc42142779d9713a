package response

import (
	"sort"
	"time"

	"rental_escrow/internal/domain/entities"
)

type ReleasePolicyResponse struct {
	Type       string     `json:"type"`
	Date       *time.Time `json:"date,omitempty"`
	Event      string     `json:"event,omitempty"`
	OffsetDays int        `json:"offset_days,omitempty"`
}

type VoteResponse struct {
	Party    string    `json:"party"`
	Decision string    `json:"decision"`
	Round    int       `json:"round"`
	VotedAt  time.Time `json:"voted_at"`
}

type BucketResponse struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	Amount        int64                 `json:"amount"`
	ReleasePolicy ReleasePolicyResponse `json:"release_policy"`
	Recipient     string                `json:"recipient"`
	State         string                `json:"state"`
	DueAt         *time.Time            `json:"due_at,omitempty"`
	ReleasedAt    *time.Time            `json:"released_at,omitempty"`

	PayoutStatus      string `json:"payout_status,omitempty"`
	PayoutAttempts    int    `json:"payout_attempts"`
	LastPayoutError   string `json:"last_payout_error,omitempty"`
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	DisputedBy string `json:"disputed_by,omitempty"`
	VoteRound  int    `json:"vote_round"`
	// Votes holds only the current round.
	Votes []VoteResponse `json:"votes"`
}

type EscrowResponse struct {
	ID               string               `json:"id"`
	Status           string               `json:"status"`
	Landlord         string               `json:"landlord"`
	Tenant           string               `json:"tenant,omitempty"`
	PropertyRef      string               `json:"property_ref,omitempty"`
	LeaseStart       *time.Time           `json:"lease_start,omitempty"`
	LeaseEnd         *time.Time           `json:"lease_end,omitempty"`
	LeaseEvents      map[string]time.Time `json:"lease_events,omitempty"`
	AutoApprovalDays int                  `json:"auto_approval_days"`
	TotalAmount      int64                `json:"total_amount"`
	Buckets          []BucketResponse     `json:"buckets"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	ClosedAt         *time.Time           `json:"closed_at,omitempty"`
	Version          int64                `json:"version"`
}

type DueBucketResponse struct {
	EscrowID  string `json:"escrow_id"`
	BucketID  string `json:"bucket_id"`
	Kind      string `json:"kind"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	State     string `json:"state"`
}

type DueBucketListResponse struct {
	AsOf    time.Time           `json:"as_of"`
	Buckets []DueBucketResponse `json:"buckets"`
}

func FromEscrow(e entities.Escrow) EscrowResponse {
	out := EscrowResponse{
		ID:               e.ID,
		Status:           string(e.Status),
		Landlord:         e.Landlord,
		Tenant:           e.Tenant,
		PropertyRef:      e.PropertyRef,
		LeaseStart:       e.LeaseStart,
		LeaseEnd:         e.LeaseEnd,
		AutoApprovalDays: e.AutoApprovalDays,
		TotalAmount:      e.TotalAmount(),
		Buckets:          make([]BucketResponse, 0, len(e.Buckets)),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		ClosedAt:         e.ClosedAt,
		Version:          e.Version,
	}
	if len(e.LeaseEvents) > 0 {
		out.LeaseEvents = make(map[string]time.Time, len(e.LeaseEvents))
		for ev, at := range e.LeaseEvents {
			out.LeaseEvents[string(ev)] = at
		}
	}
	for _, b := range e.Buckets {
		out.Buckets = append(out.Buckets, FromBucket(b))
	}
	return out
}

func FromBucket(b entities.FundBucket) BucketResponse {
	out := BucketResponse{
		ID:     b.ID,
		Kind:   string(b.Kind),
		Amount: b.Amount,
		ReleasePolicy: ReleasePolicyResponse{
			Type:       string(b.Policy.Type),
			Date:       b.Policy.Date,
			Event:      string(b.Policy.Event),
			OffsetDays: b.Policy.OffsetDays,
		},
		Recipient:         string(b.Recipient),
		State:             string(b.State),
		DueAt:             b.DueAt,
		ReleasedAt:        b.ReleasedAt,
		PayoutStatus:      string(b.PayoutStatus),
		PayoutAttempts:    b.PayoutAttempts,
		LastPayoutError:   b.LastPayoutError,
		ProviderPaymentID: b.ProviderPaymentID,
		DisputedBy:        string(b.DisputedBy),
		VoteRound:         b.VoteRound,
		Votes:             []VoteResponse{},
	}
	for _, v := range b.Votes {
		if v.Round != b.VoteRound {
			continue
		}
		out.Votes = append(out.Votes, VoteResponse{
			Party:    string(v.Party),
			Decision: string(v.Decision),
			Round:    v.Round,
			VotedAt:  v.VotedAt,
		})
	}
	sort.Slice(out.Votes, func(i, j int) bool { return out.Votes[i].Party < out.Votes[j].Party })
	return out
}

func FromDueBuckets(asOf time.Time, rows []entities.DueBucket) DueBucketListResponse {
	out := DueBucketListResponse{AsOf: asOf, Buckets: make([]DueBucketResponse, 0, len(rows))}
	for _, r := range rows {
		out.Buckets = append(out.Buckets, DueBucketResponse{
			EscrowID:  r.EscrowID,
			BucketID:  r.BucketID,
			Kind:      string(r.Kind),
			Recipient: string(r.Recipient),
			Amount:    r.Amount,
			State:     string(r.State),
		})
	}
	return out
}
