package entities

import "errors"

// Validation errors: bad input, rejected before anything is persisted.
var (
	ErrInvalidEscrowID   = errors.New("invalid escrow id")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidPolicy     = errors.New("invalid release policy")
	ErrInvalidBucketKind = errors.New("invalid bucket kind")
	ErrDuplicateBucket   = errors.New("duplicate bucket kind")
	ErrInvalidParty      = errors.New("invalid party")
	ErrInvalidDecision   = errors.New("invalid vote decision")
	ErrInvalidLeaseEvent = errors.New("invalid lease event")
	ErrBucketNotFound    = errors.New("bucket not found")
)

// State errors: the command is not valid for the current status.
var (
	ErrAlreadyInvited   = errors.New("escrow already invited")
	ErrNotInvited       = errors.New("escrow not invited")
	ErrNotAccepted      = errors.New("escrow not accepted")
	ErrNotActive        = errors.New("escrow not active")
	ErrEscrowTerminal   = errors.New("escrow closed or cancelled")
	ErrAlreadyReleased  = errors.New("bucket already released")
	ErrBucketCancelled  = errors.New("bucket cancelled")
	ErrAlreadyDisputed  = errors.New("bucket already disputed")
	ErrNotDisputed      = errors.New("bucket not disputed")
	ErrVotingNotOpen    = errors.New("voting not open for bucket")
	ErrNotReleaseDue    = errors.New("bucket not release due")
	ErrStatusRegression = errors.New("escrow status cannot move backwards")
)

// Conflict errors: the caller may reload and retry.
var (
	ErrPendingRelease = errors.New("bucket release pending")
	ErrDuplicateVote  = errors.New("duplicate vote")
)
