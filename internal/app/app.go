package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/controller"
	circuitbreaker "github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/circuit-breaker"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/mail"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/message-queue/kafka"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/search/elasticsearch"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/storage"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/tracing"
	localmiddleware "github.com/lalitaditya04/EcomStore-Platform/internal/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/repository"
	"github.com/lalitaditya04/EcomStore-Platform/internal/service"
	"github.com/lalitaditya04/EcomStore-Platform/internal/validator"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const bodyLimit = "30M"

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo

	metrics       *echo.Echo
	traceProvider *sdktrace.TracerProvider
	scheduler     gocron.Scheduler
	publisher     *kafka.Publisher
	reader        io.Closer
	cancel        context.CancelFunc
}

// SetupLogger points the global and context-less loggers at stdout.
func SetupLogger(level string) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
}

// Start wires every component and blocks serving HTTP until StopServer is called.
func (app *App) Start() error {
	ctx, cancel := context.WithCancel(log.Logger.WithContext(context.Background()))
	app.cancel = cancel

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		app.traceProvider = traceProvider
		tracer := traceProvider.Tracer(tracing.ServiceName)

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Empty subsystem keeps metric names unprefixed.
	e.Use(echoprometheus.NewMiddleware(""))
	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(bodyLimit))

	store, err := storage.NewStorage(ctx, app.Config.StorageConfig)
	if err != nil {
		return fmt.Errorf("creating object storage: %w", err)
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		e.Static(app.Config.StorageConfig.BaseURL, local.BasePath())
	}

	var publisher service.EventPublisher = kafka.DiscardPublisher{}
	if app.Config.KafkaConfig.Enabled() {
		app.publisher = kafka.CreatePublisher(kafka.CreateKafkaWriter(app.Config.KafkaConfig), circuitbreaker.CreateCircuitBreaker("kafka-publisher"))
		publisher = app.publisher
	} else {
		log.Warn().Msg("BROKER_ADDRESS or BROKER_TOPIC not set, domain events are dropped")
	}

	var notifier service.Notifier = mail.NoopNotifier{}
	if app.Config.SMTPConfig.Enabled() {
		notifier = mail.CreateSMTPNotifier(app.Config.SMTPConfig)
	}

	userRepo := repository.CreateNewUserRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	profileRepo := repository.CreateNewSellerProfileRepository(app.DB)

	searchRepo := app.createSearchRepository()
	if searchRepo != nil {
		reader := kafka.CreateKafkaReader(app.Config.KafkaConfig)
		app.reader = reader

		indexer := service.CreateCatalogIndexer(searchRepo, reader)
		go indexer.ConsumeEvent(ctx)
	}

	accountSvc := service.CreateAccountService(userRepo, *app.Config)
	productSvc := service.CreateProductService(productRepo, userRepo, profileRepo, searchRepo, store, publisher, *app.Config)
	profileSvc := service.CreateSellerProfileService(profileRepo, productRepo, userRepo, store, publisher, notifier, *app.Config)

	if err := app.scheduleStatsJob(ctx, profileSvc); err != nil {
		return fmt.Errorf("scheduling stats job: %w", err)
	}

	g := e.Group("/api")
	isLoggedIn := localmiddleware.IsLoggedIn(app.Config.JWTSecret)

	controller.CreateAccountController(g, accountSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateSellerProfileController(g, profileSvc, isLoggedIn)
	controller.CreateAdminController(g, profileSvc, localmiddleware.IsAdmin(app.Config.AdminAPIKey))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteMessageResponse(c, "pong")
	})

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// createSearchRepository returns nil unless the mirror is reachable and fed
// by the catalog indexer.
func (app *App) createSearchRepository() repository.SearchRepository {
	if !app.Config.ElasticsearchConfig.Enabled() {
		return nil
	}

	if !app.Config.KafkaConfig.Enabled() {
		log.Warn().Msg("ELASTICSEARCH_HOST is set but the broker is not, product search is disabled")
		return nil
	}

	esClient, err := elasticsearch.CreateElasticsearchClient(app.Config.ElasticsearchConfig)
	if err != nil {
		log.Error().Err(err).Msg("Search mirror unavailable")
		return nil
	}

	return repository.CreateNewElasticsearchRepository(esClient, app.Config.ElasticsearchConfig.IndexName, circuitbreaker.CreateCircuitBreaker("elasticsearch"))
}

func (app *App) scheduleStatsJob(ctx context.Context, profileSvc service.SellerProfileService) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.StatsJobInterval,
		),
		gocron.NewTask(
			func() {
				if err := profileSvc.RefreshTotalProducts(ctx); err != nil {
					log.Ctx(ctx).Error().Err(err).Str("component", "RefreshTotalProducts").Msg("")
				}
			},
		),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.scheduler = s

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.cancel != nil {
		app.cancel()
	}

	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}

	if app.reader != nil {
		if err := app.reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka reader")
		}
	}

	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka writer")
		}
	}

	if app.traceProvider != nil {
		if err := app.traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	if app.metrics != nil {
		if err := app.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop metrics server")
		}
	}

	if app.Server == nil {
		return nil
	}

	return app.Server.Shutdown(ctx)
}
