package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/luminotest/go-backend/internal/cfg"
	v1Http "github.com/luminotest/go-backend/internal/delivery/v1/http"
	firebaseInfra "github.com/luminotest/go-backend/internal/infrastructure/firebase"
	"github.com/luminotest/go-backend/internal/infrastructure/kafka"
	"github.com/luminotest/go-backend/internal/infrastructure/outbox"
	"github.com/luminotest/go-backend/internal/infrastructure/webhook"
	"github.com/luminotest/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/luminotest/go-backend/internal/repository/pgdb/converter"
	"github.com/luminotest/go-backend/internal/repository/redis"
	redisConv "github.com/luminotest/go-backend/internal/repository/redis/converter"
	"github.com/luminotest/go-backend/internal/seed"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/clients"
	"github.com/luminotest/go-backend/pkg/closer"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
	"github.com/luminotest/go-backend/pkg/postgres"
)

// App собирает зависимости сервиса приёма котировок и управляет их
// жизненным циклом. Порядок закрытия — LIFO через pkg/closer.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	worker  *outbox.Worker
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(5 * time.Second),
	}

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(_ context.Context) error {
		db.Close()
		log.Infof("Postgres pool closed")
		return nil
	})

	productConv := pgdbConv.NewProductConverter()
	essayConv := pgdbConv.NewEssayConverter()
	cartConv := pgdbConv.NewCartItemConverter()
	quotationConv := pgdbConv.NewQuotationConverter()
	userConv := pgdbConv.NewUserConverter()
	outboxConv := pgdbConv.NewOutboxEventConverter()
	catalogConv := redisConv.NewCatalogConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	essayRepo := pgdb.NewEssayRepo(db.Pool, essayConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	quotationRepo := pgdb.NewQuotationRepo(db.Pool, quotationConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := seed.NewSeeder(productRepo, essayRepo, log).Run(seedCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, catalogConv, cfg.Redis, log)

	verifierCtx, verifierCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer verifierCancel()
	verifier, err := firebaseInfra.NewVerifier(verifierCtx, cfg.Firebase, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	senders := []usecase.NotificationSender{webhook.NewSender(cfg.Webhook, log)}
	if cfg.Kafka != nil {
		producer, err := kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if err := producer.EnsureTopic(10 * time.Second); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add(func(_ context.Context) error {
			return producer.Close()
		})

		senders = append(senders, producer)
	}

	a.worker = outbox.NewWorker(outboxRepo, senders, log, db.Dsn)

	catalogUC := usecase.NewCatalogUC(productRepo, essayRepo, cacheRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, userRepo, log, cfg.Cart.MergeOnProductID)
	quotationUC := usecase.NewQuotationUC(quotationRepo, userRepo, outboxRepo, db.Pool, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, quotationUC, verifier)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add(func(ctx context.Context) error {
		return a.httpSrv.Stop(ctx)
	})

	return a, nil
}

// Run запускает воркер доставки и HTTP-сервер и блокируется до
// сигнала остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)
	a.closer.Add(func(_ context.Context) error {
		workerCancel()
		a.worker.Stop()
		a.logger.Infof("Outbox worker stopped")
		return nil
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
