package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"rental_escrow/internal/adapter/http/dto/request"
	response "rental_escrow/internal/adapter/http/dto/response"
	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles HTTP requests for the escrow lifecycle.
type EscrowHandler struct {
	usecase   usecase.IEscrowUseCase
	scheduler usecase.ISchedulerUseCase
	nowFn     func() time.Time
}

func NewEscrowHandler(uc usecase.IEscrowUseCase, scheduler usecase.ISchedulerUseCase) *EscrowHandler {
	return &EscrowHandler{usecase: uc, scheduler: scheduler, nowFn: func() time.Time { return time.Now().UTC() }}
}

// Create godoc
// @Summary Create escrow
// @Description Opens a draft escrow with its fund buckets and release policies
// @Tags escrows
// @Accept json
// @Produce json
// @Param body body request.CreateEscrowRequest true "Escrow"
// @Success 201 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows [post]
func (h *EscrowHandler) Create(c *gin.Context) {
	var req request.CreateEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] create invalid body err=%v", err)
		writeError(c, invalidRequest(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		log.Printf("[escrow][handler] create invalid input err=%v", err)
		writeError(c, invalidRequest(err))
		return
	}
	log.Printf("[escrow][handler] create start landlord=%s buckets=%d", in.Landlord, len(in.Buckets))

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[escrow][handler] create failed err=%v", err)
		writeError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] create success id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromEscrow(created))
}

// Get godoc
// @Summary Get escrow
// @Description Returns the escrow snapshot with buckets and current-round votes
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} response.EscrowResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /escrows/{id} [get]
func (h *EscrowHandler) Get(c *gin.Context) {
	id := c.Param("id")
	e, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[escrow][handler] get failed id=%s err=%v", id, err)
		writeError(c, mapEscrowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// Invite godoc
// @Summary Invite tenant
// @Tags escrows
// @Accept json
// @Produce json
// @Param id path string true "Escrow ID"
// @Param body body request.InviteRequest true "Tenant"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/invite [post]
func (h *EscrowHandler) Invite(c *gin.Context) {
	id := c.Param("id")
	var req request.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] invite invalid body id=%s err=%v", id, err)
		writeError(c, invalidRequest(err))
		return
	}
	h.respond(c, "invite", id)(h.usecase.Invite(c.Request.Context(), id, req.Tenant))
}

// Accept godoc
// @Summary Tenant accepts the invitation
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} response.EscrowResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/accept [post]
func (h *EscrowHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	h.respond(c, "accept", id)(h.usecase.Accept(c.Request.Context(), id))
}

// Fund godoc
// @Summary Confirm funding
// @Description Records that the tenant funded all buckets; the escrow becomes active
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} response.EscrowResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/fund [post]
func (h *EscrowHandler) Fund(c *gin.Context) {
	id := c.Param("id")
	h.respond(c, "fund", id)(h.usecase.ConfirmFunding(c.Request.Context(), id))
}

// Cancel godoc
// @Summary Cancel escrow
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} response.EscrowResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/cancel [post]
func (h *EscrowHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	h.respond(c, "cancel", id)(h.usecase.Cancel(c.Request.Context(), id))
}

// Check godoc
// @Summary Evaluate escrow now
// @Description Runs the release evaluation for one escrow, as a party check-in does
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} response.EscrowResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /escrows/{id}/check [post]
func (h *EscrowHandler) Check(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		writeError(c, mapEscrowError(entities.ErrInvalidEscrowID))
		return
	}
	h.respond(c, "check", id)(h.scheduler.TickEscrow(c.Request.Context(), id, h.nowFn()))
}

// RecordLeaseEvent godoc
// @Summary Record lease event
// @Description Records move_in or move_out; at defaults to now
// @Tags escrows
// @Accept json
// @Produce json
// @Param id path string true "Escrow ID"
// @Param body body request.LeaseEventRequest true "Lease event"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/lease-events [post]
func (h *EscrowHandler) RecordLeaseEvent(c *gin.Context) {
	id := c.Param("id")
	var req request.LeaseEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] lease-event invalid body id=%s err=%v", id, err)
		writeError(c, invalidRequest(err))
		return
	}
	at, err := req.ResolveAt()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if at.IsZero() {
		at = h.nowFn()
	}
	event := entities.LeaseEvent(strings.TrimSpace(req.Event))
	h.respond(c, "lease-event", id)(h.usecase.RecordLeaseEvent(c.Request.Context(), id, event, at))
}

// Dispute godoc
// @Summary Dispute a bucket
// @Tags buckets
// @Accept json
// @Produce json
// @Param id path string true "Escrow ID"
// @Param kind path string true "Bucket kind"
// @Param body body request.DisputeRequest true "Dispute"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/buckets/{kind}/dispute [post]
func (h *EscrowHandler) Dispute(c *gin.Context) {
	id, kind := c.Param("id"), bucketKindParam(c)
	var req request.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] dispute invalid body id=%s kind=%s err=%v", id, kind, err)
		writeError(c, invalidRequest(err))
		return
	}
	raisedBy := entities.PartyRole(strings.TrimSpace(req.RaisedBy))
	h.respond(c, "dispute", id)(h.usecase.Dispute(c.Request.Context(), id, kind, raisedBy, req.Reason))
}

// ResolveDispute godoc
// @Summary Resolve a bucket dispute
// @Description Returns the bucket to pending for re-evaluation, optionally awarding it to another party
// @Tags buckets
// @Accept json
// @Produce json
// @Param id path string true "Escrow ID"
// @Param kind path string true "Bucket kind"
// @Param body body request.ResolveDisputeRequest false "Award"
// @Success 200 {object} response.EscrowResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /escrows/{id}/buckets/{kind}/resolve [post]
func (h *EscrowHandler) ResolveDispute(c *gin.Context) {
	id, kind := c.Param("id"), bucketKindParam(c)
	var req request.ResolveDisputeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[escrow][handler] resolve invalid body id=%s kind=%s err=%v", id, kind, err)
			writeError(c, invalidRequest(err))
			return
		}
	}
	awardTo := entities.PartyRole(strings.TrimSpace(req.AwardTo))
	h.respond(c, "resolve", id)(h.usecase.ResolveDispute(c.Request.Context(), id, kind, awardTo))
}

// ListDueBuckets godoc
// @Summary List due buckets
// @Description Lists buckets that are release_due, or would be if evaluated at as_of
// @Tags buckets
// @Produce json
// @Param as_of query string false "RFC3339 timestamp or YYYY-MM-DD (default now)"
// @Success 200 {object} response.DueBucketListResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /buckets/due [get]
func (h *EscrowHandler) ListDueBuckets(c *gin.Context) {
	asOf := h.nowFn()
	t, err := request.ParseDate(c.Query("as_of"))
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if t != nil {
		asOf = *t
	}

	rows, err := h.usecase.ListDueBuckets(c.Request.Context(), asOf)
	if err != nil {
		log.Printf("[escrow][handler] list-due failed as_of=%s err=%v", asOf.Format(time.RFC3339), err)
		writeError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] list-due success as_of=%s rows=%d", asOf.Format(time.RFC3339), len(rows))
	c.JSON(http.StatusOK, response.FromDueBuckets(asOf, rows))
}

// respond writes the escrow snapshot or the mapped error of a command.
func (h *EscrowHandler) respond(c *gin.Context, op, id string) func(entities.Escrow, error) {
	return func(e entities.Escrow, err error) {
		if err != nil {
			log.Printf("[escrow][handler] %s failed id=%s err=%v", op, id, err)
			writeError(c, mapEscrowError(err))
			return
		}
		log.Printf("[escrow][handler] %s success id=%s status=%s version=%d", op, e.ID, e.Status, e.Version)
		c.JSON(http.StatusOK, response.FromEscrow(e))
	}
}

func bucketKindParam(c *gin.Context) entities.BucketKind {
	return entities.BucketKind(strings.TrimSpace(c.Param("kind")))
}
