package routes

import (
	"net/http"

	"rental_escrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathEscrows = "/escrows"
	PathBuckets = "/buckets"
	PathPayouts = "/payouts"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addEscrowRoutes(rg *gin.RouterGroup, escrowHandler *handlers.EscrowHandler, approvalHandler *handlers.ApprovalHandler) {
	escrows := rg.Group(PathEscrows)
	{
		escrows.POST("", escrowHandler.Create)
		escrows.GET("/:id", escrowHandler.Get)
		escrows.POST("/:id/invite", escrowHandler.Invite)
		escrows.POST("/:id/accept", escrowHandler.Accept)
		escrows.POST("/:id/fund", escrowHandler.Fund)
		escrows.POST("/:id/cancel", escrowHandler.Cancel)
		escrows.POST("/:id/check", escrowHandler.Check)
		escrows.POST("/:id/lease-events", escrowHandler.RecordLeaseEvent)

		escrows.POST("/:id/buckets/:kind/dispute", escrowHandler.Dispute)
		escrows.POST("/:id/buckets/:kind/resolve", escrowHandler.ResolveDispute)
		escrows.POST("/:id/buckets/:kind/votes", approvalHandler.RecordVote)
	}

	buckets := rg.Group(PathBuckets)
	{
		buckets.GET("/due", escrowHandler.ListDueBuckets)
	}
}

func addPayoutRoutes(rg *gin.RouterGroup, payoutHandler *handlers.PayoutHandler) {
	payouts := rg.Group(PathPayouts)
	{
		payouts.POST("/webhook", payoutHandler.Webhook)
		payouts.POST("/:bucket_id/confirm", payoutHandler.Confirm)
		payouts.POST("/:bucket_id/fail", payoutHandler.Fail)
	}
}
