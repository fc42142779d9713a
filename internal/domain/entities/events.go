package entities

import "time"

// EventType names a fact emitted by the escrow aggregate.
type EventType string

const (
	EventEscrowCreated       EventType = "escrow.created"
	EventEscrowInvited       EventType = "escrow.invited"
	EventEscrowAccepted      EventType = "escrow.accepted"
	EventEscrowFunded        EventType = "escrow.funded"
	EventEscrowActivated     EventType = "escrow.activated"
	EventEscrowCancelled     EventType = "escrow.cancelled"
	EventEscrowClosed        EventType = "escrow.closed"
	EventLeaseEventRecorded  EventType = "escrow.lease_event_recorded"
	EventReleaseRequested    EventType = "escrow.release_requested"
	EventBucketReleased      EventType = "escrow.bucket_released"
	EventPayoutFailed        EventType = "escrow.payout_failed"
	EventDisputeRaised       EventType = "escrow.dispute_raised"
	EventDisputeResolved     EventType = "escrow.dispute_resolved"
	EventVoteRecorded        EventType = "escrow.vote_recorded"
	EventAutoApprovalElapsed EventType = "escrow.auto_approval_elapsed"
)

// Event is emitted by aggregate commands and handed to collaborators
// (notification broker, payout gateway) after the aggregate is saved.
// Fields not relevant to a given Type stay empty.
type Event struct {
	ID         string       `json:"id,omitempty"`
	Type       EventType    `json:"type"`
	EscrowID   string       `json:"escrow_id"`
	BucketID   string       `json:"bucket_id,omitempty"`
	BucketKind BucketKind   `json:"bucket_kind,omitempty"`
	Recipient  PartyRole    `json:"recipient,omitempty"`
	Amount     int64        `json:"amount,omitempty"`
	Attempt    int          `json:"attempt,omitempty"`
	Party      PartyRole    `json:"party,omitempty"`
	Decision   VoteDecision `json:"decision,omitempty"`
	LeaseEvent LeaseEvent   `json:"lease_event,omitempty"`
	Status     EscrowStatus `json:"status,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
