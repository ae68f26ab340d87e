// Command server runs the mrtrack HTTP API.
//
// @title mrtrack API
// @version 1.0
// @description Field-force visit tracking and analytics for medical representatives.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/analytics"
	"mrtrack/internal/cache/noop"
	rediscache "mrtrack/internal/cache/redis"
	"mrtrack/internal/config"
	noopemail "mrtrack/internal/email/noop"
	"mrtrack/internal/email/ses"
	"mrtrack/internal/handler"
	"mrtrack/internal/logging"
	"mrtrack/internal/mockdata"
	"mrtrack/internal/port"
	"mrtrack/internal/repository/memory"
	"mrtrack/internal/repository/postgres"
	"mrtrack/internal/router"
	"mrtrack/internal/service"
	s3storage "mrtrack/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		logging.Get().WithError(err).Fatal("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.Init(cfg.Log)

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}
	cal := service.NewCalendar(analytics.WithLocation(loc))

	ctx := context.Background()
	var checks []handler.ReadinessCheck

	// Initialize repositories
	var repos service.Repositories
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		repos = postgresRepositories(db)
		checks = append(checks, handler.ReadinessCheck{Name: "postgres", Check: db.PingContext})
	default:
		repos, err = seededMemoryRepositories(&cfg.Seed, cal)
		if err != nil {
			return fmt.Errorf("failed to seed memory store: %w", err)
		}
	}

	// Initialize stats cache
	cache := noop.NewStatsCache()
	if cfg.Redis.Enabled() {
		client, err := rediscache.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()
		cache = rediscache.NewStatsCache(client, cfg.Redis.TTL)
		checks = append(checks, handler.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	}

	// Initialize report storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewReportStore(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize notifier
	var notifier port.Notifier
	if cfg.Email.Provider == "ses" {
		notifier, err = ses.NewSESNotifier(&cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
	} else {
		notifier = noopemail.NewNoopNotifier(log, cfg.Email.FrontendURL)
	}

	// Initialize services
	authSvc := service.NewAuthService(repos.Users, cfg.JWT)
	masterSvc := service.NewMasterService(repos, cache, cal)
	analyticsSvc := service.NewAnalyticsService(repos, cache, cal)
	visitSvc := service.NewVisitService(repos, cache, cal)
	expenseSvc := service.NewExpenseService(repos, cache, cal)
	approvalSvc := service.NewApprovalService(repos, cache, notifier, cal)
	reportSvc := service.NewReportService(repos, storage, cfg.S3.PresignExpiry, cal)
	taskSvc := service.NewTaskService(repos, cal)
	resetSvc := service.NewPasswordResetService(repos, notifier)

	// Setup router
	r := router.Setup(log, cfg.CORS.AllowedOrigins, authSvc, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Health:    handler.NewHealthHandler(checks...),
		Doctor:    handler.NewDoctorHandler(masterSvc, analyticsSvc),
		Product:   handler.NewProductHandler(masterSvc, analyticsSvc),
		FieldRep:  handler.NewFieldRepHandler(masterSvc, analyticsSvc, resetSvc),
		Visit:     handler.NewVisitHandler(visitSvc),
		Expense:   handler.NewExpenseHandler(expenseSvc),
		Approval:  handler.NewApprovalHandler(approvalSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Report:    handler.NewReportHandler(reportSvc, cal),
		Task:      handler.NewTaskHandler(taskSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return serve(log, srv, cfg)
}

func serve(log *logrus.Logger, srv *http.Server, cfg *config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"store": cfg.Store.Driver,
			"env":   cfg.Server.Environment,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func postgresRepositories(db *sqlx.DB) service.Repositories {
	return service.Repositories{
		Doctors:    postgres.NewDoctorRepo(db),
		Products:   postgres.NewProductRepo(db),
		FieldReps:  postgres.NewFieldRepRepo(db),
		Visits:     postgres.NewVisitRepo(db),
		ShopVisits: postgres.NewShopVisitRepo(db),
		Approvals:  postgres.NewApprovalRepo(db),
		Users:      postgres.NewUserRepo(db),
		Tasks:      postgres.NewTaskRepo(db),
	}
}

// seededMemoryRepositories builds the in-process store. With seeding enabled
// it holds the generated demo history and the demo logins.
func seededMemoryRepositories(seed *config.SeedConfig, cal service.Calendar) (service.Repositories, error) {
	store := memory.NewStore()
	repos := service.Repositories{
		Doctors:    memory.NewDoctorRepo(store),
		Products:   memory.NewProductRepo(store),
		FieldReps:  memory.NewFieldRepRepo(store),
		Visits:     memory.NewVisitRepo(store),
		ShopVisits: memory.NewShopVisitRepo(store),
		Approvals:  memory.NewApprovalRepo(store),
		Users:      memory.NewUserRepo(store),
		Tasks:      memory.NewTaskRepo(store),
	}

	data := &analytics.Dataset{
		Doctors:   mockdata.Doctors(),
		Products:  mockdata.Products(),
		FieldReps: mockdata.FieldReps(),
	}
	if seed.Enabled {
		today := seed.Today
		if today == "" {
			today = cal.Today()
		}
		generated, err := mockdata.Generator{
			Seed:         seed.Value,
			Today:        today,
			VisitDays:    seed.VisitDays,
			ApprovalDays: seed.ApprovalDays,
		}.Generate()
		if err != nil {
			return repos, err
		}
		data = generated
	}

	users, err := service.DemoUsers(data.FieldReps, seed.AdminPassword, seed.RepPassword)
	if err != nil {
		return repos, err
	}
	store.Load(data, users)
	logging.Get().WithFields(logrus.Fields{
		"doctors": len(data.Doctors),
		"visits":  len(data.Visits),
		"tasks":   len(data.Tasks),
		"users":   len(users),
	}).Info("memory store loaded")
	return repos, nil
}
