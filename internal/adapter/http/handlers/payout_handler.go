package handlers

import (
	"log"
	"net/http"

	"rental_escrow/internal/adapter/http/dto/request"
	response "rental_escrow/internal/adapter/http/dto/response"
	"rental_escrow/internal/usecase"
	"rental_escrow/pkg"

	"github.com/gin-gonic/gin"
)

// PayoutHandler receives the payout collaborator's answers.
type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// Confirm godoc
// @Summary Confirm payout
// @Description Marks the bucket released; repeated confirmations are ignored
// @Tags payouts
// @Accept json
// @Produce json
// @Param bucket_id path string true "Bucket ID (escrow_id:kind)"
// @Param body body request.ConfirmPayoutRequest false "Provider reference"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /payouts/{bucket_id}/confirm [post]
func (h *PayoutHandler) Confirm(c *gin.Context) {
	bucketID := c.Param("bucket_id")
	var req request.ConfirmPayoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[payout][handler] confirm invalid body bucket_id=%s err=%v", bucketID, err)
			writeError(c, invalidRequest(err))
			return
		}
	}
	log.Printf("[payout][handler] confirm start bucket_id=%s provider_payment_id=%s", bucketID, req.ProviderPaymentID)

	e, err := h.usecase.ConfirmPayout(c.Request.Context(), bucketID, req.ProviderPaymentID)
	if err != nil {
		log.Printf("[payout][handler] confirm failed bucket_id=%s err=%v", bucketID, err)
		writeError(c, mapEscrowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// Fail godoc
// @Summary Report payout failure
// @Description Records the failure on the bucket, which stays release_due for retry
// @Tags payouts
// @Accept json
// @Produce json
// @Param bucket_id path string true "Bucket ID (escrow_id:kind)"
// @Param body body request.FailPayoutRequest false "Failure reason"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /payouts/{bucket_id}/fail [post]
func (h *PayoutHandler) Fail(c *gin.Context) {
	bucketID := c.Param("bucket_id")
	var req request.FailPayoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[payout][handler] fail invalid body bucket_id=%s err=%v", bucketID, err)
			writeError(c, invalidRequest(err))
			return
		}
	}
	log.Printf("[payout][handler] fail start bucket_id=%s reason=%q", bucketID, req.Reason)

	e, err := h.usecase.FailPayout(c.Request.Context(), bucketID, req.Reason)
	if err != nil {
		log.Printf("[payout][handler] fail record failed bucket_id=%s err=%v", bucketID, err)
		writeError(c, mapEscrowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// Webhook godoc
// @Summary Mercado Pago payment notification
// @Description Looks the payment up at the provider and records its outcome
// @Tags payouts
// @Accept json
// @Produce json
// @Param body body request.PayoutWebhookRequest false "Notification"
// @Success 200 {object} response.EscrowResponse
// @Success 204 "Notification ignored"
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /payouts/webhook [post]
func (h *PayoutHandler) Webhook(c *gin.Context) {
	var req request.PayoutWebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[payout][handler] webhook invalid body err=%v", err)
			writeError(c, invalidRequest(err))
			return
		}
	}
	paymentID := req.ResolvePaymentID(c.Query)
	if paymentID == "" {
		log.Printf("[payout][handler] webhook ignored type=%s action=%s", req.Type, req.Action)
		c.Status(http.StatusNoContent)
		return
	}
	log.Printf("[payout][handler] webhook start provider_payment_id=%s action=%s", paymentID, req.Action)

	e, err := h.usecase.HandleProviderNotification(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payout][handler] webhook failed provider_payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPayoutProviderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// mapPayoutProviderError reports unclassified failures as the provider's.
func mapPayoutProviderError(err error) *pkg.AppError {
	appErr := mapEscrowError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		return pkg.NewDomainError("PAYOUT_PROVIDER_ERROR", "Payout provider request failed", err, http.StatusBadGateway)
	}
	return appErr
}
