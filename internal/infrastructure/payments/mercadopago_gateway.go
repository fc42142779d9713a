package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")
var ErrPayoutNotFound = errors.New("payout not found")

// paymentAPI is the part of the Mercado Pago payment client the gateway uses.
type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type PayoutOptions struct {
	PaymentMethodID string
	NotificationURL string
}

// MercadoPagoGateway pays buckets out through Mercado Pago. The bucket id
// travels as the payment's external reference, which is how repeated
// requests for the same bucket are recognized.
type MercadoPagoGateway struct {
	client   paymentAPI
	opts     PayoutOptions
	mockMode bool

	mu    sync.Mutex
	mocks map[string]entities.PayoutReceipt
}

var _ interfaces.IPayoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, opts PayoutOptions) (*MercadoPagoGateway, error) {
	if opts.PaymentMethodID == "" {
		opts.PaymentMethodID = "pix"
	}
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payout][gateway] mock mode enabled")
		return &MercadoPagoGateway{opts: opts, mockMode: true, mocks: map[string]entities.PayoutReceipt{}}, nil
	}

	if accessToken == "" {
		log.Printf("[payout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payout][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), opts: opts}, nil
}

func (g *MercadoPagoGateway) RequestPayout(ctx context.Context, req entities.PayoutRequest) (entities.PayoutReceipt, error) {
	if g != nil && g.mockMode {
		return g.mockRequest(req), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payout][gateway] gateway not configured")
		return entities.PayoutReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payout][gateway] request start bucket_id=%s amount=%d attempt=%d", req.BucketID, req.Amount, req.Attempt)

	existing, err := g.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": req.BucketID},
	})
	if err != nil {
		log.Printf("[payout][gateway] sdk search failed bucket_id=%s err=%v", req.BucketID, err)
		return entities.PayoutReceipt{}, err
	}
	if existing != nil {
		for _, r := range existing.Results {
			receipt := toReceipt(r)
			if receipt.Outcome != entities.PayoutOutcomeFailed {
				log.Printf("[payout][gateway] reusing payout bucket_id=%s provider_payment_id=%s provider_status=%s",
					req.BucketID, receipt.ProviderPaymentID, receipt.ProviderStatus)
				return receipt, nil
			}
		}
	}

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: float64(req.Amount) / 100,
		PaymentMethodID:   g.opts.PaymentMethodID,
		ExternalReference: req.BucketID,
		Description:       fmt.Sprintf("escrow %s release to %s", req.EscrowID, req.Recipient),
		NotificationURL:   g.opts.NotificationURL,
		Payer: &payment.PayerRequest{
			Email: req.Contact,
		},
	})
	if err != nil {
		log.Printf("[payout][gateway] sdk create failed bucket_id=%s err=%v", req.BucketID, err)
		return entities.PayoutReceipt{}, err
	}
	receipt := toReceipt(*resp)
	if receipt.BucketID == "" {
		receipt.BucketID = req.BucketID
	}
	log.Printf("[payout][gateway] create success provider_payment_id=%s provider_status=%s", receipt.ProviderPaymentID, receipt.ProviderStatus)
	return receipt, nil
}

func (g *MercadoPagoGateway) GetPayout(ctx context.Context, providerPaymentID string) (entities.PayoutReceipt, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		for _, r := range g.mocks {
			if r.ProviderPaymentID == providerPaymentID {
				return r, nil
			}
		}
		return entities.PayoutReceipt{}, ErrPayoutNotFound
	}
	if g == nil || g.client == nil {
		return entities.PayoutReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return entities.PayoutReceipt{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payout][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return entities.PayoutReceipt{}, err
	}
	return toReceipt(*resp), nil
}

func (g *MercadoPagoGateway) mockRequest(req entities.PayoutRequest) entities.PayoutReceipt {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.mocks[req.BucketID]; ok {
		log.Printf("[payout][gateway] mock reuse bucket_id=%s provider_payment_id=%s", req.BucketID, r.ProviderPaymentID)
		return r
	}
	r := entities.PayoutReceipt{
		ProviderPaymentID: strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
		BucketID:          req.BucketID,
		Outcome:           entities.PayoutOutcomeConfirmed,
		ProviderStatus:    "approved",
		Detail:            "accredited",
	}
	g.mocks[req.BucketID] = r
	log.Printf("[payout][gateway] mock payout success bucket_id=%s provider_payment_id=%s", req.BucketID, r.ProviderPaymentID)
	return r
}

func toReceipt(r payment.Response) entities.PayoutReceipt {
	return entities.PayoutReceipt{
		ProviderPaymentID: strconv.Itoa(r.ID),
		BucketID:          r.ExternalReference,
		Outcome:           outcomeFromStatus(r.Status),
		ProviderStatus:    r.Status,
		Detail:            r.StatusDetail,
	}
}

func outcomeFromStatus(status string) entities.PayoutOutcome {
	switch strings.ToLower(status) {
	case "approved":
		return entities.PayoutOutcomeConfirmed
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PayoutOutcomeFailed
	default:
		return entities.PayoutOutcomeAccepted
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
