package entities

import (
	"fmt"
	"time"
)

// VoteDecision is a party's answer in an approval round.
type VoteDecision string

const (
	VoteApprove VoteDecision = "approve"
	VoteReject  VoteDecision = "reject"
)

func (d VoteDecision) Valid() bool {
	return d == VoteApprove || d == VoteReject
}

// ApprovalVote is one party's vote on a bucket release.
//
// Votes from earlier rounds are kept for audit; only votes whose Round
// matches the bucket's VoteRound count.
type ApprovalVote struct {
	BucketID string       `json:"bucket_id"`
	Party    PartyRole    `json:"party"`
	Decision VoteDecision `json:"decision"`
	Round    int          `json:"round"`
	VotedAt  time.Time    `json:"voted_at"`
}

// votingOpen reports whether votes are accepted for the bucket: manual
// buckets still pending, and any bucket under dispute.
func (b *FundBucket) votingOpen() bool {
	switch b.State {
	case BucketStatePending:
		return b.Policy.Type == PolicyManual
	case BucketStateDisputed:
		return true
	}
	return false
}

func (b *FundBucket) roundVotes() []ApprovalVote {
	var out []ApprovalVote
	for _, v := range b.Votes {
		if v.Round == b.VoteRound {
			out = append(out, v)
		}
	}
	return out
}

func (b *FundBucket) hasVoted(party PartyRole) bool {
	for _, v := range b.roundVotes() {
		if v.Party == party {
			return true
		}
	}
	return false
}

// resetRound discards the current round's votes.
func (b *FundBucket) resetRound() {
	b.VoteRound++
}

// castVote applies a vote and returns the events it produced.
//
// A reject on a pending bucket raises a dispute and opens a new round. Two
// approvals in the same round make the bucket release_due.
func (b *FundBucket) castVote(party PartyRole, decision VoteDecision, now time.Time) ([]Event, error) {
	if !party.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParty, party)
	}
	if !decision.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	if !b.votingOpen() {
		return nil, fmt.Errorf("%w: bucket=%s state=%s policy=%s", ErrVotingNotOpen, b.ID, b.State, b.Policy.Type)
	}
	if b.hasVoted(party) {
		return nil, fmt.Errorf("%w: bucket=%s party=%s", ErrDuplicateVote, b.ID, party)
	}

	b.Votes = append(b.Votes, ApprovalVote{
		BucketID: b.ID,
		Party:    party,
		Decision: decision,
		Round:    b.VoteRound,
		VotedAt:  now.UTC(),
	})
	events := []Event{{
		Type:       EventVoteRecorded,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Party:      party,
		Decision:   decision,
		OccurredAt: now,
	}}

	if decision == VoteReject {
		if b.State == BucketStatePending {
			events = append(events, b.raiseDispute(party, "rejected release", now))
		}
		return events, nil
	}

	if b.approvedBy(party.Counterparty()) {
		events = append(events, b.markDue(now))
	}
	return events, nil
}

func (b *FundBucket) approvedBy(party PartyRole) bool {
	for _, v := range b.roundVotes() {
		if v.Party == party && v.Decision == VoteApprove {
			return true
		}
	}
	return false
}

// autoApprovalDue reports whether a lone uncontested approval has been held
// for at least days. Only pending manual buckets qualify; a dispute halts it.
func (b *FundBucket) autoApprovalDue(now time.Time, days int) bool {
	if b.State != BucketStatePending || b.Policy.Type != PolicyManual {
		return false
	}
	votes := b.roundVotes()
	if len(votes) == 0 {
		return false
	}
	first := votes[0].VotedAt
	for _, v := range votes {
		if v.Decision != VoteApprove {
			return false
		}
		if v.VotedAt.Before(first) {
			first = v.VotedAt
		}
	}
	return !now.Before(first.AddDate(0, 0, days))
}

func (b *FundBucket) raiseDispute(by PartyRole, reason string, now time.Time) Event {
	b.State = BucketStateDisputed
	b.DisputedBy = by
	b.DisputedAt = timePtr(now)
	b.resetRound()
	return Event{
		Type:       EventDisputeRaised,
		BucketID:   b.ID,
		BucketKind: b.Kind,
		Party:      by,
		Reason:     reason,
		OccurredAt: now,
	}
}
