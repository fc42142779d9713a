package interfaces

import (
	"context"

	"rental_escrow/internal/domain/entities"
)

//go:generate mockgen -source=payout_gateway_interface.go -destination=mocks/payout_gateway_interface_mock.go -package=mock_interfaces

// IPayoutGateway abstracts the external payment provider paying buckets out
// (e.g. Mercado Pago).
//
// RequestPayout must be idempotent per bucket id: a repeated request for a
// bucket already paid returns the existing payout instead of a new one.
// GetPayout resolves a provider notification back to its bucket.
type IPayoutGateway interface {
	RequestPayout(ctx context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error)
	GetPayout(ctx context.Context, providerPaymentID string) (entities.PayoutReceipt, error)
}
