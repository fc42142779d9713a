package handlers

import (
	"log"
	"net/http"
	"strings"

	"rental_escrow/internal/adapter/http/dto/request"
	response "rental_escrow/internal/adapter/http/dto/response"
	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler records party votes on bucket releases.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// RecordVote godoc
// @Summary Vote on a bucket release
// @Description Approve or reject the release of a manual or disputed bucket
// @Tags buckets
// @Accept json
// @Produce json
// @Param id path string true "Escrow ID"
// @Param kind path string true "Bucket kind"
// @Param body body request.VoteRequest true "Vote"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/buckets/{kind}/votes [post]
func (h *ApprovalHandler) RecordVote(c *gin.Context) {
	id, kind := c.Param("id"), bucketKindParam(c)
	var req request.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[approval][handler] vote invalid body id=%s kind=%s err=%v", id, kind, err)
		writeError(c, invalidRequest(err))
		return
	}
	party := entities.PartyRole(strings.TrimSpace(req.Party))
	decision := entities.VoteDecision(strings.ToLower(strings.TrimSpace(req.Decision)))
	log.Printf("[approval][handler] vote start id=%s kind=%s party=%s decision=%s", id, kind, party, decision)

	e, err := h.usecase.RecordVote(c.Request.Context(), id, kind, party, decision)
	if err != nil {
		log.Printf("[approval][handler] vote failed id=%s kind=%s err=%v", id, kind, err)
		writeError(c, mapEscrowError(err))
		return
	}
	log.Printf("[approval][handler] vote success id=%s kind=%s version=%d", e.ID, kind, e.Version)
	c.JSON(http.StatusOK, response.FromEscrow(e))
}
