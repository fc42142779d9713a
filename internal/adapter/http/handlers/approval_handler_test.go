package handlers

import (
	"net/http"
	"testing"

	"rental_escrow/internal/adapter/http/handlers/mocks"
	"rental_escrow/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestApprovalHandler_RecordVote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIApprovalUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)
		r := gin.New()
		r.POST("/v1/escrows/:id/buckets/:kind/votes", h.RecordVote)
		return r, uc
	}

	t.Run("missing decision", func(t *testing.T) {
		r, _ := setup(t)
		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/votes", `{"party":"landlord"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().RecordVote(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyLandlord, entities.VoteApprove).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/votes", `{"party":"landlord","decision":"APPROVE"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("duplicate vote", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().RecordVote(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyLandlord, entities.VoteApprove).Return(entities.Escrow{}, entities.ErrDuplicateVote)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/votes", `{"party":"landlord","decision":"approve"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("voting closed", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().RecordVote(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyTenant, entities.VoteReject).Return(entities.Escrow{}, entities.ErrVotingNotOpen)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/votes", `{"party":"tenant","decision":"reject"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid party", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().RecordVote(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyRole("agent"), entities.VoteApprove).Return(entities.Escrow{}, entities.ErrInvalidParty)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/votes", `{"party":"agent","decision":"approve"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
