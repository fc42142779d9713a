package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"
)

//go:generate mockgen -source=payout_usecase.go -destination=../adapter/http/handlers/mocks/payout_usecase_mock.go -package=mocks

var (
	ErrInvalidBucketID            = errors.New("invalid bucket id")
	ErrInvalidProviderPaymentID   = errors.New("invalid provider payment id")
	ErrPayoutGatewayNotConfigured = errors.New("payout gateway not configured")
)

// IPayoutUseCase drives the two-phase payout protocol with the payment
// collaborator:
//   - RequestPayout sends a release request for a bucket marked release_due
//   - ConfirmPayout / FailPayout record the collaborator's answer
//   - HandleProviderNotification resolves a provider callback by payment id

type IPayoutUseCase interface {
	RequestPayout(ctx context.Context, e entities.Escrow, ev entities.Event) error
	ConfirmPayout(ctx context.Context, bucketID, providerPaymentID string) (entities.Escrow, error)
	FailPayout(ctx context.Context, bucketID, reason string) (entities.Escrow, error)
	HandleProviderNotification(ctx context.Context, providerPaymentID string) (entities.Escrow, error)
}

type PayoutUseCase struct {
	store      *escrowStore
	dispatcher *eventDispatcher
	gateway    interfaces.IPayoutGateway
	identity   interfaces.IIdentityProvider
	metrics    interfaces.IEscrowMetrics
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(deps Dependencies) *PayoutUseCase {
	return &PayoutUseCase{
		store:      newEscrowStore(deps),
		dispatcher: newEventDispatcher(deps, nil),
		gateway:    deps.Gateway,
		identity:   deps.Identity,
		metrics:    metricsOrNoop(deps.Metrics),
	}
}

// RequestPayout is called after the escrow lock was released. Failures of
// the gateway or of the identity lookup are recorded on the bucket, which
// stays release_due and is retried by the next tick.
func (u *PayoutUseCase) RequestPayout(ctx context.Context, e entities.Escrow, ev entities.Event) error {
	log.Printf("[payout][usecase] request start escrow_id=%s bucket_id=%s recipient=%s amount=%d attempt=%d",
		e.ID, ev.BucketID, ev.Recipient, ev.Amount, ev.Attempt)
	if u.gateway == nil {
		log.Printf("[payout][usecase] gateway not configured bucket_id=%s", ev.BucketID)
		return ErrPayoutGatewayNotConfigured
	}

	req := entities.PayoutRequest{
		BucketID:     ev.BucketID,
		EscrowID:     e.ID,
		Recipient:    ev.Recipient,
		RecipientRef: e.RecipientRef(ev.Recipient),
		Amount:       ev.Amount,
		Attempt:      ev.Attempt,
	}
	if u.identity != nil {
		party, err := u.identity.ResolveParty(ctx, req.RecipientRef)
		if err != nil {
			u.metrics.ObservePayoutError()
			log.Printf("[payout][usecase] recipient lookup failed bucket_id=%s ref=%s err=%v", ev.BucketID, req.RecipientRef, err)
			_, failErr := u.FailPayout(ctx, ev.BucketID, "identity: "+err.Error())
			return errors.Join(err, failErr)
		}
		req.Contact = party.ContactChannel
	}

	receipt, err := u.gateway.RequestPayout(ctx, req)
	if err != nil {
		u.metrics.ObservePayoutError()
		log.Printf("[payout][usecase] gateway failed bucket_id=%s err=%v", ev.BucketID, err)
		_, failErr := u.FailPayout(ctx, ev.BucketID, "gateway: "+err.Error())
		return errors.Join(err, failErr)
	}
	log.Printf("[payout][usecase] gateway answered bucket_id=%s provider_payment_id=%s outcome=%s",
		ev.BucketID, receipt.ProviderPaymentID, receipt.Outcome)

	switch receipt.Outcome {
	case entities.PayoutOutcomeConfirmed:
		_, err = u.ConfirmPayout(ctx, ev.BucketID, receipt.ProviderPaymentID)
	case entities.PayoutOutcomeFailed:
		u.metrics.ObservePayoutError()
		_, err = u.FailPayout(ctx, ev.BucketID, providerFailureReason(receipt))
	}
	return err
}

func (u *PayoutUseCase) ConfirmPayout(ctx context.Context, bucketID, providerPaymentID string) (entities.Escrow, error) {
	bucketID = strings.TrimSpace(bucketID)
	escrowID, err := escrowIDFromBucket(bucketID)
	if err != nil {
		return entities.Escrow{}, err
	}
	providerPaymentID = strings.TrimSpace(providerPaymentID)

	e, events, err := u.store.mutate(ctx, escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.ConfirmPayout(bucketID, providerPaymentID, now)
	})
	if err != nil {
		log.Printf("[payout][usecase] confirm failed bucket_id=%s err=%v", bucketID, err)
		return entities.Escrow{}, err
	}
	if len(events) == 0 {
		log.Printf("[payout][usecase] confirm ignored (already released) bucket_id=%s", bucketID)
	}
	u.dispatcher.dispatch(ctx, e, events)
	return e, nil
}

func (u *PayoutUseCase) FailPayout(ctx context.Context, bucketID, reason string) (entities.Escrow, error) {
	bucketID = strings.TrimSpace(bucketID)
	escrowID, err := escrowIDFromBucket(bucketID)
	if err != nil {
		return entities.Escrow{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "payout failed"
	}

	e, events, err := u.store.mutate(ctx, escrowID, func(e *entities.Escrow, now time.Time) ([]entities.Event, error) {
		return e.FailPayout(bucketID, reason, now)
	})
	if err != nil {
		log.Printf("[payout][usecase] fail record failed bucket_id=%s err=%v", bucketID, err)
		return entities.Escrow{}, err
	}
	u.dispatcher.dispatch(ctx, e, events)
	return e, nil
}

// HandleProviderNotification looks the payout up at the provider and
// records its final outcome. Payouts still in progress are left alone.
func (u *PayoutUseCase) HandleProviderNotification(ctx context.Context, providerPaymentID string) (entities.Escrow, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Escrow{}, ErrInvalidProviderPaymentID
	}
	if u.gateway == nil {
		return entities.Escrow{}, ErrPayoutGatewayNotConfigured
	}

	receipt, err := u.gateway.GetPayout(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[payout][usecase] notification lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[payout][usecase] notification provider_payment_id=%s bucket_id=%s outcome=%s",
		providerPaymentID, receipt.BucketID, receipt.Outcome)

	switch receipt.Outcome {
	case entities.PayoutOutcomeConfirmed:
		return u.ConfirmPayout(ctx, receipt.BucketID, receipt.ProviderPaymentID)
	case entities.PayoutOutcomeFailed:
		return u.FailPayout(ctx, receipt.BucketID, providerFailureReason(receipt))
	}

	escrowID, err := escrowIDFromBucket(receipt.BucketID)
	if err != nil {
		return entities.Escrow{}, err
	}
	return u.store.get(ctx, escrowID)
}

func escrowIDFromBucket(bucketID string) (string, error) {
	escrowID, _, err := entities.ParseBucketID(bucketID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBucketID, err)
	}
	return escrowID, nil
}

func providerFailureReason(r entities.PayoutReceipt) string {
	reason := "provider status " + r.ProviderStatus
	if r.Detail != "" {
		reason += ": " + r.Detail
	}
	return reason
}
