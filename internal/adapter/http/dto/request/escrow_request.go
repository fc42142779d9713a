package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rental_escrow/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

const dateOnly = "2006-01-02"

type ReleasePolicyRequest struct {
	Type       string `json:"type" binding:"required" example:"at_lease_end"`
	Date       string `json:"date,omitempty" example:"2026-01-31"`
	Event      string `json:"event,omitempty" example:"move_in"`
	OffsetDays int    `json:"offset_days,omitempty" example:"1"`
}

type BucketRequest struct {
	Kind          string               `json:"kind" binding:"required" example:"deposit"`
	Amount        int64                `json:"amount" example:"150000"`
	ReleasePolicy ReleasePolicyRequest `json:"release_policy" binding:"required"`
}

// CreateEscrowRequest opens a draft escrow. Amounts are in the smallest
// currency unit; dates accept RFC3339 or YYYY-MM-DD.
type CreateEscrowRequest struct {
	Landlord         string          `json:"landlord" binding:"required" example:"landlord-1"`
	Tenant           string          `json:"tenant,omitempty" example:"tenant-1"`
	PropertyRef      string          `json:"property_ref,omitempty" example:"apt-42"`
	LeaseStart       string          `json:"lease_start,omitempty" example:"2025-02-01"`
	LeaseEnd         string          `json:"lease_end,omitempty" example:"2026-01-31"`
	AutoApprovalDays int             `json:"auto_approval_days,omitempty" example:"14"`
	Buckets          []BucketRequest `json:"buckets" binding:"required,min=1,dive"`
}

func (r CreateEscrowRequest) ToInput() (entities.NewEscrowInput, error) {
	start, err := ParseDate(r.LeaseStart)
	if err != nil {
		return entities.NewEscrowInput{}, fmt.Errorf("lease_start: %w", err)
	}
	end, err := ParseDate(r.LeaseEnd)
	if err != nil {
		return entities.NewEscrowInput{}, fmt.Errorf("lease_end: %w", err)
	}

	in := entities.NewEscrowInput{
		Landlord:         strings.TrimSpace(r.Landlord),
		Tenant:           strings.TrimSpace(r.Tenant),
		PropertyRef:      strings.TrimSpace(r.PropertyRef),
		LeaseStart:       start,
		LeaseEnd:         end,
		AutoApprovalDays: r.AutoApprovalDays,
	}
	for _, b := range r.Buckets {
		policy, err := b.ReleasePolicy.ToPolicy()
		if err != nil {
			return entities.NewEscrowInput{}, fmt.Errorf("%s: %w", b.Kind, err)
		}
		in.Buckets = append(in.Buckets, entities.BucketSpec{
			Kind:   entities.BucketKind(strings.TrimSpace(b.Kind)),
			Amount: b.Amount,
			Policy: policy,
		})
	}
	return in, nil
}

// ToPolicy maps the wire shape; semantic checks stay with the domain.
func (r ReleasePolicyRequest) ToPolicy() (entities.ReleasePolicy, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return entities.ReleasePolicy{}, fmt.Errorf("date: %w", err)
	}
	return entities.ReleasePolicy{
		Type:       entities.PolicyType(strings.TrimSpace(r.Type)),
		Date:       date,
		Event:      entities.LeaseEvent(strings.TrimSpace(r.Event)),
		OffsetDays: r.OffsetDays,
	}, nil
}

type InviteRequest struct {
	Tenant string `json:"tenant" binding:"required" example:"tenant-1"`
}

type LeaseEventRequest struct {
	Event string `json:"event" binding:"required" example:"move_in"`
	At    string `json:"at,omitempty" example:"2025-02-01T10:00:00Z"`
}

func (r LeaseEventRequest) ResolveAt() (time.Time, error) {
	at, err := ParseDate(r.At)
	if err != nil || at == nil {
		return time.Time{}, err
	}
	return *at, nil
}

type DisputeRequest struct {
	RaisedBy string `json:"raised_by" binding:"required" example:"tenant"`
	Reason   string `json:"reason,omitempty" example:"damage assessment disputed"`
}

type ResolveDisputeRequest struct {
	AwardTo string `json:"award_to,omitempty" example:"landlord"`
}

type VoteRequest struct {
	Party    string `json:"party" binding:"required" example:"landlord"`
	Decision string `json:"decision" binding:"required" example:"approve"`
}

// ParseDate accepts RFC3339 timestamps or plain dates (midnight UTC).
// An empty value yields nil.
func ParseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateOnly, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return &t, nil
}
