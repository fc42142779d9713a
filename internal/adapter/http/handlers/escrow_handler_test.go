package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental_escrow/internal/adapter/http/handlers/mocks"
	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestEscrowHandler(t *testing.T) (*gin.Engine, *mocks.MockIEscrowUseCase, *mocks.MockISchedulerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEscrowUseCase(ctrl)
	sched := mocks.NewMockISchedulerUseCase(ctrl)
	h := NewEscrowHandler(uc, sched)
	h.nowFn = func() time.Time { return fixedNow }

	r := gin.New()
	r.POST("/v1/escrows", h.Create)
	r.GET("/v1/escrows/:id", h.Get)
	r.POST("/v1/escrows/:id/invite", h.Invite)
	r.POST("/v1/escrows/:id/accept", h.Accept)
	r.POST("/v1/escrows/:id/fund", h.Fund)
	r.POST("/v1/escrows/:id/cancel", h.Cancel)
	r.POST("/v1/escrows/:id/check", h.Check)
	r.POST("/v1/escrows/:id/lease-events", h.RecordLeaseEvent)
	r.POST("/v1/escrows/:id/buckets/:kind/dispute", h.Dispute)
	r.POST("/v1/escrows/:id/buckets/:kind/resolve", h.ResolveDispute)
	r.GET("/v1/buckets/due", h.ListDueBuckets)
	return r, uc, sched
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func activeEscrow(id string) entities.Escrow {
	return entities.Escrow{
		ID:       id,
		Landlord: "landlord-1",
		Tenant:   "tenant-1",
		Status:   entities.EscrowStatusActive,
		Buckets: []entities.FundBucket{{
			ID:        entities.BucketID(id, entities.BucketKindDeposit),
			Kind:      entities.BucketKindDeposit,
			Amount:    150000,
			Policy:    entities.AtLeaseEnd(),
			Recipient: entities.PartyTenant,
			State:     entities.BucketStatePending,
		}},
		Version: 4,
	}
}

func TestEscrowHandler_Create(t *testing.T) {
	const body = `{
		"landlord":"landlord-1",
		"lease_start":"2025-02-01",
		"lease_end":"2026-01-31",
		"buckets":[{"kind":"deposit","amount":150000,"release_policy":{"type":"at_lease_end"}}]
	}`

	t.Run("invalid body", func(t *testing.T) {
		r, _, _ := newTestEscrowHandler(t)
		w := doJSON(r, http.MethodPost, "/v1/escrows", `{"landlord":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r, _, _ := newTestEscrowHandler(t)
		w := doJSON(r, http.MethodPost, "/v1/escrows", `{"landlord":"x","lease_end":"31/01/2026","buckets":[{"kind":"deposit","amount":1,"release_policy":{"type":"at_lease_end"}}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation error", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Escrow{}, entities.ErrInvalidDateRange)

		w := doJSON(r, http.MethodPost, "/v1/escrows", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown landlord", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Escrow{}, fmt.Errorf("landlord: %w", interfaces.ErrPartyNotFound))

		w := doJSON(r, http.MethodPost, "/v1/escrows", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in entities.NewEscrowInput) (entities.Escrow, error) {
			if in.Landlord != "landlord-1" || len(in.Buckets) != 1 || in.Buckets[0].Policy.Type != entities.PolicyAtLeaseEnd {
				t.Fatalf("unexpected input %+v", in)
			}
			e := activeEscrow("esc-1")
			e.Status = entities.EscrowStatusDraft
			e.Tenant = ""
			return e, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/escrows", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "esc-1" || got["status"] != "draft" {
			t.Fatalf("unexpected body %v", got)
		}
	})
}

func TestEscrowHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Escrow{}, usecase.ErrEscrowNotFound)

		w := doJSON(r, http.MethodGet, "/v1/escrows/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), "esc-1").Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodGet, "/v1/escrows/esc-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_Lifecycle(t *testing.T) {
	t.Run("invite requires tenant", func(t *testing.T) {
		r, _, _ := newTestEscrowHandler(t)
		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/invite", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invite twice conflicts", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Invite(gomock.Any(), "esc-1", "tenant-1").Return(entities.Escrow{}, entities.ErrAlreadyInvited)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/invite", `{"tenant":"tenant-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		e := activeEscrow("esc-1")
		e.Status = entities.EscrowStatusAccepted
		uc.EXPECT().Accept(gomock.Any(), "esc-1").Return(e, nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fund before accept conflicts", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().ConfirmFunding(gomock.Any(), "esc-1").Return(entities.Escrow{}, entities.ErrNotAccepted)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/fund", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel with pending release conflicts", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Cancel(gomock.Any(), "esc-1").Return(entities.Escrow{}, entities.ErrPendingRelease)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent update conflicts", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Cancel(gomock.Any(), "esc-1").Return(entities.Escrow{}, interfaces.ErrVersionConflict)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("check ticks the escrow now", func(t *testing.T) {
		r, _, sched := newTestEscrowHandler(t)
		sched.EXPECT().TickEscrow(gomock.Any(), "esc-1", fixedNow).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/check", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_RecordLeaseEvent(t *testing.T) {
	t.Run("defaults to now", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().RecordLeaseEvent(gomock.Any(), "esc-1", entities.LeaseEventMoveIn, fixedNow).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/lease-events", `{"event":"move_in"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit time", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		at := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().RecordLeaseEvent(gomock.Any(), "esc-1", entities.LeaseEventMoveIn, at).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/lease-events", `{"event":"move_in","at":"2025-02-01T10:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().RecordLeaseEvent(gomock.Any(), "esc-1", entities.LeaseEvent("keys_lost"), fixedNow).Return(entities.Escrow{}, entities.ErrInvalidLeaseEvent)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/lease-events", `{"event":"keys_lost"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_Disputes(t *testing.T) {
	t.Run("dispute", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Dispute(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyTenant, "damage").Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/dispute", `{"raised_by":"tenant","reason":"damage"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dispute released bucket conflicts", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Dispute(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyTenant, "").Return(entities.Escrow{}, entities.ErrAlreadyReleased)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/dispute", `{"raised_by":"tenant"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("dispute unknown bucket", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().Dispute(gomock.Any(), "esc-1", entities.BucketKind("pet_fee"), entities.PartyTenant, "").Return(entities.Escrow{}, entities.ErrBucketNotFound)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/pet_fee/dispute", `{"raised_by":"tenant"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("resolve without body", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().ResolveDispute(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyRole("")).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/resolve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resolve with award", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().ResolveDispute(gomock.Any(), "esc-1", entities.BucketKindDeposit, entities.PartyLandlord).Return(activeEscrow("esc-1"), nil)

		w := doJSON(r, http.MethodPost, "/v1/escrows/esc-1/buckets/deposit/resolve", `{"award_to":"landlord"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_ListDueBuckets(t *testing.T) {
	t.Run("invalid as_of", func(t *testing.T) {
		r, _, _ := newTestEscrowHandler(t)
		w := doJSON(r, http.MethodGet, "/v1/buckets/due?as_of=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to now", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().ListDueBuckets(gomock.Any(), fixedNow).Return([]entities.DueBucket{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/buckets/due", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("as_of date", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		asOf := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListDueBuckets(gomock.Any(), asOf).Return([]entities.DueBucket{{
			EscrowID:  "esc-1",
			BucketID:  "esc-1:first_month_rent",
			Kind:      entities.BucketKindFirstMonthRent,
			Recipient: entities.PartyLandlord,
			Amount:    120000,
			State:     entities.BucketStateReleaseDue,
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/buckets/due?as_of=2025-02-02", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Buckets []map[string]any `json:"buckets"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(got.Buckets) != 1 || got.Buckets[0]["bucket_id"] != "esc-1:first_month_rent" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		r, uc, _ := newTestEscrowHandler(t)
		uc.EXPECT().ListDueBuckets(gomock.Any(), fixedNow).Return(nil, usecase.ErrRepositoryNotConfigured)

		w := doJSON(r, http.MethodGet, "/v1/buckets/due", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
