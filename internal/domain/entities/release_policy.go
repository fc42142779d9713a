package entities

import (
	"fmt"
	"time"
)

// PolicyType is the closed set of release policies a bucket may carry.
type PolicyType string

const (
	PolicyAtLeaseEnd        PolicyType = "at_lease_end"
	PolicyAtSpecificDate    PolicyType = "at_specific_date"
	PolicyAtEventPlusOffset PolicyType = "at_event_plus_offset"
	PolicyOnStartDate       PolicyType = "on_start_date"
	PolicyManual            PolicyType = "manual"
)

// LeaseEvent is an occurrence in the life of a lease that event-based
// policies can be anchored on.
type LeaseEvent string

const (
	LeaseEventMoveIn  LeaseEvent = "move_in"
	LeaseEventMoveOut LeaseEvent = "move_out"
)

func (e LeaseEvent) Valid() bool {
	return e == LeaseEventMoveIn || e == LeaseEventMoveOut
}

// ReleasePolicy decides when a bucket becomes due.
//
// Only the fields of the selected Type are meaningful:
//   - at_specific_date: Date
//   - at_event_plus_offset: Event, OffsetDays
type ReleasePolicy struct {
	Type       PolicyType `json:"type"`
	Date       *time.Time `json:"date,omitempty"`
	Event      LeaseEvent `json:"event,omitempty"`
	OffsetDays int        `json:"offset_days,omitempty"`
}

func AtLeaseEnd() ReleasePolicy  { return ReleasePolicy{Type: PolicyAtLeaseEnd} }
func OnStartDate() ReleasePolicy { return ReleasePolicy{Type: PolicyOnStartDate} }
func Manual() ReleasePolicy      { return ReleasePolicy{Type: PolicyManual} }

func AtSpecificDate(d time.Time) ReleasePolicy {
	return ReleasePolicy{Type: PolicyAtSpecificDate, Date: timePtr(d)}
}

func AtEventPlusOffset(event LeaseEvent, offsetDays int) ReleasePolicy {
	return ReleasePolicy{Type: PolicyAtEventPlusOffset, Event: event, OffsetDays: offsetDays}
}

// Validate checks that the policy carries what it needs to ever fire,
// given the lease dates of its escrow.
func (p ReleasePolicy) Validate(leaseStart, leaseEnd *time.Time) error {
	switch p.Type {
	case PolicyAtLeaseEnd:
		if leaseEnd == nil {
			return fmt.Errorf("%w: %s requires lease end", ErrInvalidPolicy, p.Type)
		}
	case PolicyOnStartDate:
		if leaseStart == nil {
			return fmt.Errorf("%w: %s requires lease start", ErrInvalidPolicy, p.Type)
		}
	case PolicyAtSpecificDate:
		if p.Date == nil || p.Date.IsZero() {
			return fmt.Errorf("%w: %s requires date", ErrInvalidPolicy, p.Type)
		}
	case PolicyAtEventPlusOffset:
		if !p.Event.Valid() {
			return fmt.Errorf("%w: unknown event %q", ErrInvalidPolicy, p.Event)
		}
		if p.OffsetDays < 0 {
			return fmt.Errorf("%w: negative offset", ErrInvalidPolicy)
		}
	case PolicyManual:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPolicy, p.Type)
	}
	return nil
}

func (p ReleasePolicy) clone() ReleasePolicy {
	out := p
	out.Date = clonePtr(p.Date)
	return out
}

// Decision is the outcome of evaluating a policy.
type Decision int

const (
	NotDue Decision = iota
	Due
)

func (d Decision) String() string {
	if d == Due {
		return "due"
	}
	return "not_due"
}

// PolicyContext is what the evaluator may look at.
type PolicyContext struct {
	Now         time.Time
	LeaseStart  *time.Time
	LeaseEnd    *time.Time
	LeaseEvents map[LeaseEvent]time.Time
}

// Evaluate is pure and deterministic. A policy whose anchor is missing is
// never due; manual policies are never due from time alone.
func Evaluate(p ReleasePolicy, c PolicyContext) (Decision, error) {
	switch p.Type {
	case PolicyAtLeaseEnd:
		return dueAt(c.Now, c.LeaseEnd), nil
	case PolicyAtSpecificDate:
		return dueAt(c.Now, p.Date), nil
	case PolicyOnStartDate:
		return dueAt(c.Now, c.LeaseStart), nil
	case PolicyAtEventPlusOffset:
		at, ok := c.LeaseEvents[p.Event]
		if !ok {
			return NotDue, nil
		}
		fireAt := at.AddDate(0, 0, p.OffsetDays)
		return dueAt(c.Now, &fireAt), nil
	case PolicyManual:
		return NotDue, nil
	}
	return NotDue, fmt.Errorf("%w: unknown type %q", ErrInvalidPolicy, p.Type)
}

func dueAt(now time.Time, at *time.Time) Decision {
	if at == nil || now.Before(*at) {
		return NotDue
	}
	return Due
}
