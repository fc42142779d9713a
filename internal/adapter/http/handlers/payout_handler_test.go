package handlers

import (
	"errors"
	"net/http"
	"testing"

	"rental_escrow/internal/adapter/http/handlers/mocks"
	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestPayoutHandler(t *testing.T) (*gin.Engine, *mocks.MockIPayoutUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPayoutUseCase(ctrl)
	h := NewPayoutHandler(uc)

	r := gin.New()
	r.POST("/v1/payouts/webhook", h.Webhook)
	r.POST("/v1/payouts/:bucket_id/confirm", h.Confirm)
	r.POST("/v1/payouts/:bucket_id/fail", h.Fail)
	return r, uc
}

func TestPayoutHandler_Confirm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().ConfirmPayout(gomock.Any(), "esc-1:deposit", "987").Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/payouts/esc-1:deposit/confirm", `{"provider_payment_id":"987"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed bucket id", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().ConfirmPayout(gomock.Any(), "nokind", "").Return(entities.Escrow{}, usecase.ErrInvalidBucketID)

		w := doJSON(r, http.MethodPost, "/v1/payouts/nokind/confirm", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bucket not release due", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().ConfirmPayout(gomock.Any(), "esc-1:deposit", "").Return(entities.Escrow{}, entities.ErrNotReleaseDue)

		w := doJSON(r, http.MethodPost, "/v1/payouts/esc-1:deposit/confirm", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPayoutHandler_Fail(t *testing.T) {
	r, uc := newTestPayoutHandler(t)
	uc.EXPECT().FailPayout(gomock.Any(), "esc-1:deposit", "account closed").Return(activeEscrow("esc-1"), nil)

	w := doJSON(r, http.MethodPost, "/v1/payouts/esc-1:deposit/fail", `{"reason":"account closed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPayoutHandler_Webhook(t *testing.T) {
	t.Run("ignored notification", func(t *testing.T) {
		r, _ := newTestPayoutHandler(t)
		w := doJSON(r, http.MethodPost, "/v1/payouts/webhook", `{"type":"merchant_order","data":{"id":"1"}}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("body payment id", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().HandleProviderNotification(gomock.Any(), "123").Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/payouts/webhook", `{"type":"payment","action":"payment.updated","data":{"id":"123"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query payment id", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().HandleProviderNotification(gomock.Any(), "456").Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/payouts/webhook?topic=payment&id=456", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().HandleProviderNotification(gomock.Any(), "123").Return(entities.Escrow{}, errors.New("mercado pago: 500"))

		w := doJSON(r, http.MethodPost, "/v1/payouts/webhook", `{"type":"payment","data":{"id":"123"}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := newTestPayoutHandler(t)
		uc.EXPECT().HandleProviderNotification(gomock.Any(), "123").Return(entities.Escrow{}, usecase.ErrPayoutGatewayNotConfigured)

		w := doJSON(r, http.MethodPost, "/v1/payouts/webhook", `{"type":"payment","data":{"id":"123"}}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
