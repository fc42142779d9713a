package entities

// PayoutRequest is what the payout collaborator receives for a release.
// BucketID is the deduplication key: the collaborator must not pay the
// same bucket twice, since requests are delivered at least once.
type PayoutRequest struct {
	BucketID     string    `json:"bucket_id"`
	EscrowID     string    `json:"escrow_id"`
	Recipient    PartyRole `json:"recipient"`
	RecipientRef string    `json:"recipient_ref"`
	Contact      string    `json:"contact,omitempty"`
	Amount       int64     `json:"amount"`
	Attempt      int       `json:"attempt"`
}

// PayoutOutcome is the collaborator's view of a payout.
type PayoutOutcome string

const (
	PayoutOutcomeAccepted  PayoutOutcome = "accepted"
	PayoutOutcomeConfirmed PayoutOutcome = "confirmed"
	PayoutOutcomeFailed    PayoutOutcome = "failed"
)

// PayoutReceipt is returned when a payout is requested or looked up.
type PayoutReceipt struct {
	ProviderPaymentID string        `json:"provider_payment_id"`
	BucketID          string        `json:"bucket_id"`
	Outcome           PayoutOutcome `json:"outcome"`
	ProviderStatus    string        `json:"provider_status,omitempty"`
	Detail            string        `json:"detail,omitempty"`
}
