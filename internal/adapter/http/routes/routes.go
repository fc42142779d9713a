package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "rental_escrow/docs" // This will be auto-generated
	"rental_escrow/internal/adapter/http/handlers"
	"rental_escrow/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer app.close()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	getRoutes(app)

	go app.scheduler.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[http] shutdown signal received")
	case err := <-errCh:
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown failed err=%v", err)
	}
}

func getRoutes(app *application) {
	escrowHandler := handlers.NewEscrowHandler(app.escrows, app.scheduler)
	approvalHandler := handlers.NewApprovalHandler(app.approvals)
	payoutHandler := handlers.NewPayoutHandler(app.payouts)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEscrowRoutes(v1, escrowHandler, approvalHandler)
	addPayoutRoutes(v1, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
