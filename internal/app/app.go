// Package app wires configuration into the stores, LLM pipeline and
// usecases shared by the HTTP server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/adapter/persistence/repository"
	appconfig "github.com/acg-data/bizgenius-sub001/internal/config"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/database"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/events"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/llm"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/payments"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/storage"
	"github.com/acg-data/bizgenius-sub001/internal/prompts"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	llmConnPoolSize = 16

	// ShutdownTimeout bounds how long Shutdown waits for in-flight runs.
	ShutdownTimeout = 30 * time.Second
)

// App holds the long-lived components of one process.
type App struct {
	Config appconfig.Config

	SessionRepo interfaces.ISessionRepository
	CostRepo    interfaces.ICostRecordRepository

	Sessions      *usecase.SessionUseCase
	Costs         *usecase.CostUseCase
	Subscriptions *usecase.SubscriptionUseCase
	Generator     *usecase.ReportGenerator
	Dispatcher    *usecase.AsyncDispatcher
	Broadcaster   *events.Broadcaster
	Pricing       *llm.PricingTable

	cancelRuns context.CancelFunc
	closers    []func() error
}

// New connects the configured backends and builds the pipeline. Generation
// runs use their own base context so they outlive the requests that start
// them; Shutdown stops them.
func New(ctx context.Context, cfg appconfig.Config) (*App, error) {
	a := &App{Config: cfg, Broadcaster: events.NewBroadcaster()}

	if err := a.buildStores(ctx); err != nil {
		a.Close()
		return nil, err
	}

	catalog, err := llm.DefaultCatalog()
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := catalog.OverridePriority(cfg.ProviderPriority); err != nil {
		a.Close()
		return nil, fmt.Errorf("LLM_PROVIDER_PRIORITY: %w", err)
	}
	registry := llm.NewRegistry(catalog,
		llm.WithRequestTimeout(cfg.LLMRequestTimeout),
		llm.WithHTTPClient(llm.NewPooledHTTPClient(llmConnPoolSize, cfg.LLMRequestTimeout)),
		llm.WithSiteIdentity(cfg.SiteURL, cfg.SiteName),
	)
	a.Pricing = llm.NewPricingTable(catalog.Pricing)

	promptCatalog, err := prompts.NewCatalog()
	if err != nil {
		a.Close()
		return nil, err
	}

	opts, err := a.buildSinks(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Generator = usecase.NewReportGenerator(
		a.SessionRepo,
		a.CostRepo,
		registry,
		a.Pricing,
		llm.NewRateLimiter(llm.DefaultMinCallInterval),
		promptCatalog,
		opts...,
	)

	runCtx, cancel := context.WithCancel(context.Background())
	a.cancelRuns = cancel
	a.Dispatcher = usecase.NewAsyncDispatcher(runCtx, a.Generator, cfg.MaxConcurrentGenerations)

	a.Sessions = usecase.NewSessionUseCase(a.SessionRepo, a.Dispatcher)
	a.Costs = usecase.NewCostUseCase(a.CostRepo)

	log.Printf("[app] ready store=%s ledger=%s providers=%v max_concurrent=%d", cfg.StoreBackend, cfg.LedgerBackend, catalog.Priority, cfg.MaxConcurrentGenerations)
	return a, nil
}

func (a *App) buildStores(ctx context.Context) error {
	cfg := a.Config

	var ddb *dynamodb.Client
	if cfg.StoreBackend == appconfig.StoreBackendDynamoDB || cfg.LedgerBackend == appconfig.LedgerBackendDynamoDB {
		client, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return fmt.Errorf("dynamodb: %w", err)
		}
		ddb = client
	}

	var subs interfaces.ISubscriptionRepository
	switch cfg.StoreBackend {
	case appconfig.StoreBackendMemory:
		a.SessionRepo = repository.NewMemorySessionRepository()
		subs = repository.NewMemorySubscriptionRepository()
	default:
		a.SessionRepo = repository.NewSessionDynamoRepository(ddb)
		subs = repository.NewSubscriptionDynamoRepository(ddb)
	}

	switch cfg.LedgerBackend {
	case appconfig.LedgerBackendMemory:
		a.CostRepo = repository.NewMemoryCostRecordRepository()
	case appconfig.LedgerBackendPostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, db.Close)
		a.CostRepo = repository.NewCostRecordPostgresRepository(db)
	default:
		a.CostRepo = repository.NewCostRecordDynamoRepository(ddb)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[app] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}
	a.Subscriptions = usecase.NewSubscriptionUseCase(subs, gateway)
	return nil
}

// buildSinks fans session events out to the progress stream plus the
// optional Kafka topic and Slack alerts, and archives reports to S3 when a
// bucket is set.
func (a *App) buildSinks(ctx context.Context) ([]usecase.GeneratorOption, error) {
	cfg := a.Config
	publisher := events.NewMultiPublisher().Add("stream", a.Broadcaster)

	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, kp.Close)
		publisher.Add("kafka", kp)
	}
	if cfg.SlackToken != "" {
		publisher.Add("slack", events.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel))
	}

	opts := []usecase.GeneratorOption{usecase.WithEventPublisher(publisher)}
	if cfg.S3Bucket != "" {
		awsCfg, err := database.NewAWSConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		archiver, err := storage.NewS3ReportArchiver(awsCfg, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithReportArchiver(archiver))
	}
	log.Printf("[app] event sinks=%d archive_bucket=%q", publisher.Len(), cfg.S3Bucket)
	return opts, nil
}

// Shutdown waits for running generations until ctx expires, then cancels
// them and waits for them to return before closing backends.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Dispatcher != nil {
		done := make(chan struct{})
		go func() {
			a.Dispatcher.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			log.Printf("[app] shutdown deadline reached; cancelling running generations")
			a.cancelRuns()
			<-done
		}
	}
	return a.Close()
}

func (a *App) Close() error {
	if a.cancelRuns != nil {
		a.cancelRuns()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
