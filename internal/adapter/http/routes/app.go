package routes

import (
	"context"
	"fmt"
	"log"
	"os"

	"rental_escrow/internal/adapter/persistence/repository"
	"rental_escrow/internal/infrastructure/config"
	"rental_escrow/internal/infrastructure/database"
	"rental_escrow/internal/infrastructure/identity"
	"rental_escrow/internal/infrastructure/lock"
	"rental_escrow/internal/infrastructure/messaging"
	"rental_escrow/internal/infrastructure/metrics"
	"rental_escrow/internal/infrastructure/payments"
	"rental_escrow/internal/usecase"
	"rental_escrow/internal/usecase/interfaces"
)

// application holds the wired use cases and the resources to release on exit.
type application struct {
	escrows   usecase.IEscrowUseCase
	approvals usecase.IApprovalUseCase
	payouts   usecase.IPayoutUseCase
	scheduler usecase.ISchedulerUseCase
	metrics   *metrics.Recorder

	closers []func() error
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("[app] close failed err=%v", err)
		}
	}
}

func buildApp(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{metrics: metrics.NewRecorder()}

	repo, err := buildRepository(ctx, cfg, app)
	if err != nil {
		app.close()
		return nil, err
	}
	locker, err := buildLocker(ctx, cfg, app)
	if err != nil {
		app.close()
		return nil, err
	}
	publisher, err := buildPublisher(cfg, app)
	if err != nil {
		app.close()
		return nil, err
	}
	directory, err := buildDirectory(cfg)
	if err != nil {
		app.close()
		return nil, err
	}

	deps := usecase.Dependencies{
		Repo:             repo,
		Locker:           locker,
		Identity:         directory,
		Publisher:        publisher,
		Metrics:          app.metrics,
		AutoApprovalDays: cfg.AutoApprovalDays,
		Scheduler: usecase.SchedulerConfig{
			Interval:    cfg.SchedulerInterval,
			WorkerCount: cfg.SchedulerWorkers,
		},
	}

	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, payments.PayoutOptions{
		PaymentMethodID: cfg.PayoutPaymentMethodID,
		NotificationURL: cfg.PayoutNotificationURL,
	})
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		deps.Gateway = mpGateway
	}

	payouts := usecase.NewPayoutUseCase(deps)
	scheduler := usecase.NewSchedulerUseCase(deps, payouts)
	app.payouts = payouts
	app.scheduler = scheduler
	app.escrows = usecase.NewEscrowUseCase(deps, payouts, scheduler)
	app.approvals = usecase.NewApprovalUseCase(deps, payouts)

	log.Printf("[app] wired repository=%s lock=%s kafka_brokers=%d party_directory=%q",
		cfg.RepositoryDriver, cfg.LockDriver, len(cfg.KafkaBrokers), cfg.PartyDirectoryFile)
	return app, nil
}

func buildRepository(ctx context.Context, cfg config.Config, app *application) (interfaces.IEscrowRepository, error) {
	switch cfg.RepositoryDriver {
	case config.RepositoryMemory:
		return repository.NewEscrowMemoryRepository(), nil
	case config.RepositoryPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, db.Close)
		repo := repository.NewEscrowPostgresRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate escrows: %w", err)
		}
		return repo, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		// Local endpoints (DynamoDB Local, LocalStack) start empty.
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureEscrowsTable(ctx, ddb, cfg.EscrowsTable); err != nil {
				return nil, err
			}
		}
		return repository.NewEscrowDynamoRepository(ddb), nil
	}
}

func buildLocker(ctx context.Context, cfg config.Config, app *application) (interfaces.IEscrowLocker, error) {
	if cfg.LockDriver != config.LockRedis {
		return lock.NewMemoryLocker(), nil
	}
	client, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, client.Close)
	return lock.NewRedisLocker(client, cfg.LockTTL), nil
}

func buildPublisher(cfg config.Config, app *application) (interfaces.IEventPublisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return messaging.NewLogPublisher(), nil
	}
	p, err := messaging.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, p.Close)
	return p, nil
}

func buildDirectory(cfg config.Config) (*identity.Directory, error) {
	if cfg.PartyDirectoryFile == "" {
		return identity.NewPassthroughDirectory(), nil
	}
	return identity.LoadDirectory(cfg.PartyDirectoryFile)
}
