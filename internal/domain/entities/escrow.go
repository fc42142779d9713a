package entities

import (
	"fmt"
	"strings"
	"time"
)

// EscrowStatus represents the lifecycle of an escrow.
//
//	draft -> invited -> accepted -> funded -> active -> closed
//	any non-terminal state -> cancelled (only while nothing was released)
type EscrowStatus string

const (
	EscrowStatusDraft     EscrowStatus = "draft"
	EscrowStatusInvited   EscrowStatus = "invited"
	EscrowStatusAccepted  EscrowStatus = "accepted"
	EscrowStatusFunded    EscrowStatus = "funded"
	EscrowStatusActive    EscrowStatus = "active"
	EscrowStatusClosed    EscrowStatus = "closed"
	EscrowStatusCancelled EscrowStatus = "cancelled"
)

var statusRank = map[EscrowStatus]int{
	EscrowStatusDraft:     0,
	EscrowStatusInvited:   1,
	EscrowStatusAccepted:  2,
	EscrowStatusFunded:    3,
	EscrowStatusActive:    4,
	EscrowStatusClosed:    5,
	EscrowStatusCancelled: 5,
}

func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowStatusClosed || s == EscrowStatusCancelled
}

// Rank orders statuses along the main lifecycle; cancelled ranks with closed.
func (s EscrowStatus) Rank() int { return statusRank[s] }

const (
	DefaultAutoApprovalDays = 14
	// PayoutRetryAfter is how long a release_due bucket waits for a payout
	// confirmation before the next tick re-emits the request.
	PayoutRetryAfter = time.Hour
)

// Escrow is the aggregate root. All mutations go through its methods, each
// of which returns the events it produced or a typed error, leaving the
// aggregate untouched on error.
//
// Storage model:
//   - PK: id
//   - optimistic concurrency on version
type Escrow struct {
	ID          string       `json:"id"`
	Landlord    string       `json:"landlord"`
	Tenant      string       `json:"tenant,omitempty"`
	PropertyRef string       `json:"property_ref,omitempty"`
	Buckets     []FundBucket `json:"buckets"`
	Status      EscrowStatus `json:"status"`

	LeaseStart  *time.Time               `json:"lease_start,omitempty"`
	LeaseEnd    *time.Time               `json:"lease_end,omitempty"`
	LeaseEvents map[LeaseEvent]time.Time `json:"lease_events,omitempty"`

	AutoApprovalDays int `json:"auto_approval_days"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	Version   int64      `json:"version"`
}

// BucketSpec describes one bucket requested at creation.
type BucketSpec struct {
	Kind   BucketKind
	Amount int64
	Policy ReleasePolicy
}

type NewEscrowInput struct {
	ID               string
	Landlord         string
	Tenant           string
	PropertyRef      string
	Buckets          []BucketSpec
	LeaseStart       *time.Time
	LeaseEnd         *time.Time
	AutoApprovalDays int
}

// NewEscrow validates the input and builds a draft escrow.
// Zero-amount buckets are omitted; a negative amount, or nothing left to
// hold, is ErrInvalidAmount.
func NewEscrow(in NewEscrowInput, now time.Time) (Escrow, []Event, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Landlord = strings.TrimSpace(in.Landlord)
	in.Tenant = strings.TrimSpace(in.Tenant)
	if in.ID == "" {
		return Escrow{}, nil, ErrInvalidEscrowID
	}
	if in.Landlord == "" {
		return Escrow{}, nil, fmt.Errorf("%w: landlord required", ErrInvalidParty)
	}
	if in.Tenant != "" && in.Tenant == in.Landlord {
		return Escrow{}, nil, fmt.Errorf("%w: tenant equals landlord", ErrInvalidParty)
	}
	if in.LeaseStart != nil && in.LeaseEnd != nil && in.LeaseEnd.Before(*in.LeaseStart) {
		return Escrow{}, nil, ErrInvalidDateRange
	}
	if in.AutoApprovalDays <= 0 {
		in.AutoApprovalDays = DefaultAutoApprovalDays
	}

	e := Escrow{
		ID:               in.ID,
		Landlord:         in.Landlord,
		Tenant:           in.Tenant,
		PropertyRef:      strings.TrimSpace(in.PropertyRef),
		Status:           EscrowStatusDraft,
		LeaseStart:       clonePtr(in.LeaseStart),
		LeaseEnd:         clonePtr(in.LeaseEnd),
		AutoApprovalDays: in.AutoApprovalDays,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}

	seen := map[BucketKind]bool{}
	var total int64
	for _, spec := range in.Buckets {
		if !spec.Kind.Valid() {
			return Escrow{}, nil, fmt.Errorf("%w: %q", ErrInvalidBucketKind, spec.Kind)
		}
		if seen[spec.Kind] {
			return Escrow{}, nil, fmt.Errorf("%w: %s", ErrDuplicateBucket, spec.Kind)
		}
		seen[spec.Kind] = true
		if spec.Amount < 0 {
			return Escrow{}, nil, fmt.Errorf("%w: %s=%d", ErrInvalidAmount, spec.Kind, spec.Amount)
		}
		if spec.Amount == 0 {
			continue
		}
		if err := spec.Policy.Validate(in.LeaseStart, in.LeaseEnd); err != nil {
			return Escrow{}, nil, fmt.Errorf("%s: %w", spec.Kind, err)
		}
		total += spec.Amount
		e.Buckets = append(e.Buckets, FundBucket{
			ID:        BucketID(e.ID, spec.Kind),
			Kind:      spec.Kind,
			Amount:    spec.Amount,
			Policy:    spec.Policy.clone(),
			Recipient: spec.Kind.DefaultRecipient(),
			State:     BucketStatePending,
		})
	}
	if total <= 0 {
		return Escrow{}, nil, fmt.Errorf("%w: escrow holds nothing", ErrInvalidAmount)
	}

	events := e.stamp(now, Event{Type: EventEscrowCreated, Amount: total, Status: e.Status, OccurredAt: now})
	return e, events, nil
}

// Bucket returns the bucket with the given id.
func (e *Escrow) Bucket(bucketID string) (*FundBucket, error) {
	for i := range e.Buckets {
		if e.Buckets[i].ID == bucketID {
			return &e.Buckets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucketID)
}

// TotalAmount is the sum of all bucket amounts.
func (e *Escrow) TotalAmount() int64 {
	var total int64
	for _, b := range e.Buckets {
		total += b.Amount
	}
	return total
}

func (e *Escrow) Invite(tenantRef string, now time.Time) ([]Event, error) {
	if e.Status != EscrowStatusDraft {
		return nil, fmt.Errorf("%w: status=%s", ErrAlreadyInvited, e.Status)
	}
	tenantRef = strings.TrimSpace(tenantRef)
	if tenantRef == "" || tenantRef == e.Landlord {
		return nil, fmt.Errorf("%w: tenant=%q", ErrInvalidParty, tenantRef)
	}
	e.Tenant = tenantRef
	if err := e.advance(EscrowStatusInvited); err != nil {
		return nil, err
	}
	return e.stamp(now, Event{Type: EventEscrowInvited, Party: PartyTenant, Status: e.Status, OccurredAt: now}), nil
}

func (e *Escrow) Accept(now time.Time) ([]Event, error) {
	if e.Status != EscrowStatusInvited {
		return nil, fmt.Errorf("%w: status=%s", ErrNotInvited, e.Status)
	}
	if err := e.advance(EscrowStatusAccepted); err != nil {
		return nil, err
	}
	return e.stamp(now, Event{Type: EventEscrowAccepted, Party: PartyTenant, Status: e.Status, OccurredAt: now}), nil
}

// ConfirmFunding records payment intake for all buckets and activates the
// escrow. Funding and activation happen in sequence.
func (e *Escrow) ConfirmFunding(now time.Time) ([]Event, error) {
	if e.Status != EscrowStatusAccepted {
		return nil, fmt.Errorf("%w: status=%s", ErrNotAccepted, e.Status)
	}
	if err := e.advance(EscrowStatusFunded); err != nil {
		return nil, err
	}
	funded := Event{Type: EventEscrowFunded, Amount: e.TotalAmount(), Status: e.Status, OccurredAt: now}
	if err := e.advance(EscrowStatusActive); err != nil {
		return nil, err
	}
	activated := Event{Type: EventEscrowActivated, Status: e.Status, OccurredAt: now}
	return e.stamp(now, funded, activated), nil
}

// Cancel is refused once any money was paid out or while a payout is in
// flight.
func (e *Escrow) Cancel(now time.Time) ([]Event, error) {
	if e.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status=%s", ErrEscrowTerminal, e.Status)
	}
	for _, b := range e.Buckets {
		if b.State == BucketStateReleased {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyReleased, b.ID)
		}
	}
	for _, b := range e.Buckets {
		if b.State == BucketStateReleaseDue || b.PayoutStatus == PayoutStatusRequested {
			return nil, fmt.Errorf("%w: %s", ErrPendingRelease, b.ID)
		}
	}
	for i := range e.Buckets {
		e.Buckets[i].State = BucketStateCancelled
	}
	if err := e.advance(EscrowStatusCancelled); err != nil {
		return nil, err
	}
	return e.stamp(now, Event{Type: EventEscrowCancelled, Amount: e.TotalAmount(), Status: e.Status, OccurredAt: now}), nil
}

// RecordLeaseEvent stores the first occurrence of a lease event. Recording
// the same event again is a no-op.
func (e *Escrow) RecordLeaseEvent(event LeaseEvent, at, now time.Time) ([]Event, error) {
	if e.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status=%s", ErrEscrowTerminal, e.Status)
	}
	if !event.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLeaseEvent, event)
	}
	if _, ok := e.LeaseEvents[event]; ok {
		return nil, nil
	}
	if e.LeaseEvents == nil {
		e.LeaseEvents = map[LeaseEvent]time.Time{}
	}
	e.LeaseEvents[event] = at.UTC()
	return e.stamp(now, Event{Type: EventLeaseEventRecorded, LeaseEvent: event, OccurredAt: now}), nil
}

// Tick re-evaluates every bucket in creation order. Pending buckets whose
// policy (or auto-approval window) is due become release_due and emit a
// payout request; release_due buckets re-emit when their last request
// failed or went unconfirmed for PayoutRetryAfter. Ticking twice at the same
// instant leaves the aggregate unchanged the second time.
func (e *Escrow) Tick(now time.Time) []Event {
	if e.Status != EscrowStatusActive {
		return nil
	}
	pc := e.policyContext(now)
	var events []Event
	for i := range e.Buckets {
		b := &e.Buckets[i]
		switch b.State {
		case BucketStatePending:
			if b.autoApprovalDue(now, e.AutoApprovalDays) {
				events = append(events,
					Event{Type: EventAutoApprovalElapsed, BucketID: b.ID, BucketKind: b.Kind, OccurredAt: now},
					b.markDue(now))
				continue
			}
			if d, err := Evaluate(b.Policy, pc); err == nil && d == Due {
				events = append(events, b.markDue(now))
			}
		case BucketStateReleaseDue:
			if b.payoutRetryDue(now, PayoutRetryAfter) {
				events = append(events, b.requestPayout(now))
			}
		}
	}
	events = append(events, e.closeIfSettled(now)...)
	return e.stamp(now, events...)
}

// ConfirmPayout completes the second phase of a release. Confirming an
// already released bucket is a no-op. A payout that was in flight when the
// bucket got disputed still lands: the money has moved.
func (e *Escrow) ConfirmPayout(bucketID, providerPaymentID string, now time.Time) ([]Event, error) {
	b, err := e.Bucket(bucketID)
	if err != nil {
		return nil, err
	}
	switch {
	case b.State == BucketStateReleased:
		return nil, nil
	case b.State == BucketStateReleaseDue:
	case b.State == BucketStateDisputed && b.PayoutStatus == PayoutStatusRequested:
	default:
		return nil, fmt.Errorf("%w: bucket=%s state=%s", ErrNotReleaseDue, b.ID, b.State)
	}
	b.State = BucketStateReleased
	b.ReleasedAt = timePtr(now)
	b.PayoutStatus = PayoutStatusConfirmed
	b.LastPayoutError = ""
	if providerPaymentID != "" {
		b.ProviderPaymentID = providerPaymentID
	}
	events := []Event{{
		Type:       EventBucketReleased,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Recipient:  b.Recipient,
		Amount:     b.Amount,
		OccurredAt: now,
	}}
	events = append(events, e.closeIfSettled(now)...)
	return e.stamp(now, events...), nil
}

// FailPayout records a failed payout. A release_due bucket stays due and the
// next tick retries; a disputed bucket stays disputed with nothing in flight.
// Failures for buckets no longer awaiting payout are ignored.
func (e *Escrow) FailPayout(bucketID, reason string, now time.Time) ([]Event, error) {
	b, err := e.Bucket(bucketID)
	if err != nil {
		return nil, err
	}
	switch {
	case b.State == BucketStateReleaseDue && b.PayoutStatus != PayoutStatusFailed:
	case b.State == BucketStateDisputed && b.PayoutStatus == PayoutStatusRequested:
	default:
		return nil, nil
	}
	b.PayoutStatus = PayoutStatusFailed
	b.LastPayoutError = reason
	return e.stamp(now, Event{
		Type:       EventPayoutFailed,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Recipient:  b.Recipient,
		Amount:     b.Amount,
		Attempt:    b.PayoutAttempts,
		Reason:     reason,
		OccurredAt: now,
	}), nil
}

// Dispute halts automatic release of a bucket until the dispute is resolved.
func (e *Escrow) Dispute(bucketID string, raisedBy PartyRole, reason string, now time.Time) ([]Event, error) {
	if e.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status=%s", ErrEscrowTerminal, e.Status)
	}
	if !raisedBy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParty, raisedBy)
	}
	b, err := e.Bucket(bucketID)
	if err != nil {
		return nil, err
	}
	switch b.State {
	case BucketStateReleased:
		return nil, fmt.Errorf("%w: %s", ErrAlreadyReleased, b.ID)
	case BucketStateCancelled:
		return nil, fmt.Errorf("%w: %s", ErrBucketCancelled, b.ID)
	case BucketStateDisputed:
		return nil, fmt.Errorf("%w: %s", ErrAlreadyDisputed, b.ID)
	}
	return e.stamp(now, b.raiseDispute(raisedBy, reason, now)), nil
}

// ResolveDispute re-arms the bucket's policy for the next tick and resets
// its voting round. awardTo, when set, redirects the payout. A bucket whose
// payout is still in flight goes back to release_due with the request kept,
// so it can neither be cancelled nor redirected until the provider answers.
func (e *Escrow) ResolveDispute(bucketID string, awardTo PartyRole, now time.Time) ([]Event, error) {
	if e.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status=%s", ErrEscrowTerminal, e.Status)
	}
	if awardTo != "" && !awardTo.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParty, awardTo)
	}
	b, err := e.Bucket(bucketID)
	if err != nil {
		return nil, err
	}
	if b.State != BucketStateDisputed {
		return nil, fmt.Errorf("%w: bucket=%s state=%s", ErrNotDisputed, b.ID, b.State)
	}
	inFlight := b.PayoutStatus == PayoutStatusRequested
	if inFlight && awardTo != "" && awardTo != b.Recipient {
		return nil, fmt.Errorf("%w: %s", ErrPendingRelease, b.ID)
	}
	b.DisputedBy = ""
	b.DisputedAt = nil
	b.resetRound()
	if inFlight {
		b.State = BucketStateReleaseDue
	} else {
		b.State = BucketStatePending
		b.DueAt = nil
		b.PayoutStatus = PayoutStatusNone
		b.LastPayoutRequestAt = nil
		b.LastPayoutError = ""
	}
	if awardTo != "" {
		b.Recipient = awardTo
	}
	return e.stamp(now, Event{
		Type:       EventDisputeResolved,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Recipient:  b.Recipient,
		OccurredAt: now,
	}), nil
}

// RecordVote is the approval coordinator's entry point into the aggregate.
func (e *Escrow) RecordVote(bucketID string, party PartyRole, decision VoteDecision, now time.Time) ([]Event, error) {
	if e.Status != EscrowStatusActive {
		return nil, fmt.Errorf("%w: status=%s", ErrNotActive, e.Status)
	}
	b, err := e.Bucket(bucketID)
	if err != nil {
		return nil, err
	}
	events, err := b.castVote(party, decision, now)
	if err != nil {
		return nil, err
	}
	return e.stamp(now, events...), nil
}

// DueBucket is a read model row for buckets awaiting payout at a given time.
type DueBucket struct {
	EscrowID  string      `json:"escrow_id"`
	BucketID  string      `json:"bucket_id"`
	Kind      BucketKind  `json:"kind"`
	Recipient PartyRole   `json:"recipient"`
	Amount    int64       `json:"amount"`
	State     BucketState `json:"state"`
}

// DueBuckets lists, without mutating, the buckets that are release_due or
// would become due if the escrow were ticked at asOf.
func (e *Escrow) DueBuckets(asOf time.Time) []DueBucket {
	if e.Status != EscrowStatusActive {
		return nil
	}
	pc := e.policyContext(asOf)
	var out []DueBucket
	for _, b := range e.Buckets {
		due := b.State == BucketStateReleaseDue
		if b.State == BucketStatePending {
			if b.autoApprovalDue(asOf, e.AutoApprovalDays) {
				due = true
			} else if d, err := Evaluate(b.Policy, pc); err == nil && d == Due {
				due = true
			}
		}
		if due {
			out = append(out, DueBucket{
				EscrowID:  e.ID,
				BucketID:  b.ID,
				Kind:      b.Kind,
				Recipient: b.Recipient,
				Amount:    b.Amount,
				State:     b.State,
			})
		}
	}
	return out
}

// RecipientRef maps a bucket recipient role to the party reference.
func (e *Escrow) RecipientRef(role PartyRole) string {
	if role == PartyTenant {
		return e.Tenant
	}
	return e.Landlord
}

// Clone returns a deep copy that shares no mutable state with e.
func (e Escrow) Clone() Escrow {
	out := e
	out.LeaseStart = clonePtr(e.LeaseStart)
	out.LeaseEnd = clonePtr(e.LeaseEnd)
	out.ClosedAt = clonePtr(e.ClosedAt)
	if e.Buckets != nil {
		out.Buckets = make([]FundBucket, len(e.Buckets))
		for i, b := range e.Buckets {
			out.Buckets[i] = b.clone()
		}
	}
	if e.LeaseEvents != nil {
		out.LeaseEvents = make(map[LeaseEvent]time.Time, len(e.LeaseEvents))
		for k, v := range e.LeaseEvents {
			out.LeaseEvents[k] = v
		}
	}
	return out
}

func (e *Escrow) policyContext(now time.Time) PolicyContext {
	return PolicyContext{
		Now:         now,
		LeaseStart:  e.LeaseStart,
		LeaseEnd:    e.LeaseEnd,
		LeaseEvents: e.LeaseEvents,
	}
}

func (e *Escrow) closeIfSettled(now time.Time) []Event {
	if e.Status != EscrowStatusActive {
		return nil
	}
	for _, b := range e.Buckets {
		if !b.State.IsTerminal() {
			return nil
		}
	}
	if err := e.advance(EscrowStatusClosed); err != nil {
		return nil
	}
	e.ClosedAt = timePtr(now)
	return []Event{{Type: EventEscrowClosed, Amount: e.TotalAmount(), Status: e.Status, OccurredAt: now}}
}

func (e *Escrow) advance(to EscrowStatus) error {
	if e.Status.IsTerminal() || to.Rank() <= e.Status.Rank() {
		return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, e.Status, to)
	}
	e.Status = to
	return nil
}

func (e *Escrow) stamp(now time.Time, events ...Event) []Event {
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		events[i].EscrowID = e.ID
	}
	e.UpdatedAt = now.UTC()
	return events
}
