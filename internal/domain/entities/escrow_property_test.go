package entities

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// TestAtLeaseEndProperty verifies the lease-end policy fires exactly from the
// lease end onwards.
// Property: Evaluate(AtLeaseEnd, now) == Due <=> now >= leaseEnd
func TestAtLeaseEndProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	start := day(2025, 1, 1)
	properties.Property("at_lease_end is due iff now >= lease end", prop.ForAll(
		func(endDays, nowHours int) bool {
			end := start.AddDate(0, 0, endDays)
			now := start.Add(time.Duration(nowHours) * time.Hour)
			got, err := Evaluate(AtLeaseEnd(), PolicyContext{Now: now, LeaseStart: &start, LeaseEnd: &end})
			if err != nil {
				return false
			}
			return (got == Due) == !now.Before(end)
		},
		gen.IntRange(0, 800),
		gen.IntRange(0, 800*24+48),
	))

	properties.TestingRun(t)
}

func historyInput() NewEscrowInput {
	return leaseInput(
		BucketSpec{Kind: BucketKindDeposit, Amount: 15000, Policy: AtLeaseEnd()},
		BucketSpec{Kind: BucketKindFirstMonthRent, Amount: 8000, Policy: OnStartDate()},
		BucketSpec{Kind: BucketKindPrepaidRent, Amount: 5000, Policy: Manual()},
	)
}

// inFlight reports whether the provider may still pay the bucket out.
func inFlight(b FundBucket) bool {
	return b.PayoutStatus == PayoutStatusRequested && !b.State.IsTerminal()
}

func pickBucket(e *Escrow, n int, match func(FundBucket) bool) (string, bool) {
	var ids []string
	for _, b := range e.Buckets {
		if match(b) {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return "", false
	}
	return ids[n%len(ids)], true
}

// historyStep decodes v into a command: the last digit picks the command,
// the rest picks its arguments and how many hours pass before it runs.
type historyStep struct {
	op  int
	arg int
}

func decodeStep(v int) historyStep {
	return historyStep{op: v % 10, arg: v / 10}
}

func (s historyStep) party() PartyRole {
	if s.arg%2 == 0 {
		return PartyLandlord
	}
	return PartyTenant
}

func (s historyStep) apply(e *Escrow, now time.Time) ([]Event, error) {
	anyBucket := func(FundBucket) bool { return true }
	switch s.op {
	case 0, 1:
		return e.Tick(now), nil
	case 2:
		if id, ok := pickBucket(e, s.arg, inFlight); ok {
			return e.ConfirmPayout(id, "mp-1", now)
		}
	case 3:
		if id, ok := pickBucket(e, s.arg, inFlight); ok {
			return e.FailPayout(id, "declined", now)
		}
	case 4:
		id, _ := pickBucket(e, s.arg, anyBucket)
		return e.Dispute(id, s.party(), "", now)
	case 5:
		id, _ := pickBucket(e, s.arg, anyBucket)
		var award PartyRole
		if s.arg%3 == 0 {
			award = s.party()
		}
		return e.ResolveDispute(id, award, now)
	case 6, 7:
		id, _ := pickBucket(e, s.arg, anyBucket)
		decision := VoteApprove
		if s.arg%4 == 0 {
			decision = VoteReject
		}
		return e.RecordVote(id, s.party(), decision, now)
	case 9:
		if s.arg%4 == 0 {
			return e.Cancel(now)
		}
	}
	return nil, nil
}

// TestEscrowHistoryProperty drives an active escrow through arbitrary
// sequences of ticks, payout outcomes, disputes, votes and cancellations.
// Properties checked after every step:
//   - a rejected command leaves the aggregate untouched
//   - a payout in flight can always be confirmed
//   - ticking twice at the same instant emits nothing the second time
//   - a bucket is released at most once, and only from release_due or
//     from a dispute raised while its payout was in flight
//   - cancellation succeeds only while nothing is released or in flight,
//     and a cancelled escrow never holds a payout the provider could pay
//   - the escrow status never moves backwards
//   - the held total never changes
func TestEscrowHistoryProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("command histories keep the escrow invariants", prop.ForAll(
		func(steps []int) bool {
			now := day(2025, 8, 1)
			e, _, err := NewEscrow(historyInput(), now)
			if err != nil {
				return false
			}
			if _, err := e.Invite("tenant-1", now); err != nil {
				return false
			}
			if _, err := e.Accept(now); err != nil {
				return false
			}
			if _, err := e.ConfirmFunding(now); err != nil {
				return false
			}
			total := e.TotalAmount()
			released := map[string]int{}
			rank := e.Status.Rank()

			for _, v := range steps {
				step := decodeStep(v)
				now = now.Add(time.Duration(step.arg) * time.Hour)
				before := e.Clone()

				events, err := step.apply(&e, now)
				if err != nil {
					if step.op == 2 || !assert.ObjectsAreEqual(before, e) {
						return false
					}
					continue
				}

				retick := e.Clone()
				retick.Tick(now)
				if len(retick.Tick(now)) != 0 {
					return false
				}

				for _, ev := range events {
					switch ev.Type {
					case EventBucketReleased:
						released[ev.BucketID]++
						prev, err := before.Bucket(ev.BucketID)
						if err != nil || released[ev.BucketID] > 1 {
							return false
						}
						fromDispute := prev.State == BucketStateDisputed && prev.PayoutStatus == PayoutStatusRequested
						if prev.State != BucketStateReleaseDue && !fromDispute {
							return false
						}
					case EventEscrowCancelled:
						for _, b := range before.Buckets {
							if b.State == BucketStateReleased || inFlight(b) {
								return false
							}
						}
					}
				}

				if e.Status == EscrowStatusCancelled {
					for _, b := range e.Buckets {
						if b.State != BucketStateCancelled || b.PayoutStatus == PayoutStatusRequested || b.PayoutStatus == PayoutStatusConfirmed {
							return false
						}
					}
				}
				if e.Status.Rank() < rank || e.TotalAmount() != total {
					return false
				}
				rank = e.Status.Rank()
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 9999)),
	))

	properties.TestingRun(t)
}
